// Package tuimsg defines messages scenes send up to the application model.
package tuimsg

// AskQuestionMsg requests that a question be routed through the query
// engine.
type AskQuestionMsg struct {
	Question string
}

// AnswerMsg carries the engine's reply for a question, plus any related
// question suggestions.
type AnswerMsg struct {
	Question string
	Answer   string
	Related  []string
}
