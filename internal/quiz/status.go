package quiz

// Phase is the session's state-machine state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseShowingResult
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseShowingResult:
		return "showing-result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the display status of one sentence.
type Status int

const (
	StatusDefault Status = iota
	StatusSelected
	StatusCorrect
	StatusIncorrect
	StatusDisabled
)

func (s Status) String() string {
	switch s {
	case StatusDefault:
		return "default"
	case StatusSelected:
		return "selected"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// FeedbackKind says which feedback message, if any, applies.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackRetry
	FeedbackSolved
	FeedbackRevealed
)
