package translate

// CommandRequest carries the caller-supplied context for one translation.
// Values are fixed at creation; the pipeline never mutates a request.
type CommandRequest struct {
	Instruction      string
	Cwd              string
	Shell            string
	Temperature      float64
	AllowDestructive bool
}

// CommandSuggestion is the structured result extracted from a model response.
// An empty Command means "no safe command exists"; in that case FollowUp
// carries a clarifying question. A suggestion with both fields empty is
// invalid and is never produced by the parser.
type CommandSuggestion struct {
	Command              string `json:"command"`
	Explanation          string `json:"explanation"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	FollowUp             string `json:"follow_up"`
}

// WithConfirmation returns a copy of the suggestion with the confirmation
// flag replaced.
func (s CommandSuggestion) WithConfirmation(required bool) CommandSuggestion {
	s.RequiresConfirmation = required
	return s
}
