package llm

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "\n  {\"a\":1}  \n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"untagged fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with padding", "  ```json\n  {\"a\":1}  \n```  ", `{"a":1}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"multi line body", "```json\n{\n  \"a\": 1\n}\n```", "{\n  \"a\": 1\n}"},
		{"fence not wrapping everything", "Sure!\n```json\n{}\n```", "Sure!\n```json\n{}\n```"},
		{"empty fence", "```\n```", "```\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
