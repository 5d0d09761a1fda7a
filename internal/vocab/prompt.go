package vocab

const systemPrompt = `You are an English teacher writing vocabulary practice for 7th-grade students.
Always answer with a single JSON object and nothing else.`

// questionPrompt asks for one question. The worked example pins down the
// field names and the placeholder convention.
const questionPrompt = `Generate a vocabulary question for a 7th-grade student.
The response MUST be a JSON object with the following fields:
- "word": A single vocabulary word suitable for a 7th grader.
- "sentences": An array of three distinct sentences. One sentence should correctly use the vocabulary word (replace the word with '_____'). The other two sentences should be distractors where the word does not fit (also use '_____' as a placeholder). The sentences should be at a 7th-grade reading level. Ensure the '_____' placeholder appears exactly once in each sentence.
- "correctSentenceIndex": A number (0, 1, or 2) indicating the index of the sentence in the "sentences" array where the "word" correctly fits.
- "explanation": A simple explanation of the vocabulary word's meaning and why it fits in the correct sentence, suitable for a 7th grader.

Example output format:
{
  "word": "eloquent",
  "sentences": [
    "The old house looked _____ in the moonlight.",
    "She gave an _____ speech that moved everyone.",
    "He _____ ate his dinner quickly."
  ],
  "correctSentenceIndex": 1,
  "explanation": "Eloquent means fluent or persuasive in speaking or writing. The speech was moving because it was eloquent."
}`
