package translate

import "fmt"

// ParsingError is returned when a model response cannot be turned into a
// CommandSuggestion: no JSON object was found, the JSON was invalid, or the
// payload resolved to an empty command and follow_up. Fragment holds the
// candidate substring that failed, when one was located.
type ParsingError struct {
	Message  string
	Fragment string
	Err      error
}

func (e *ParsingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParsingError) Unwrap() error { return e.Err }
