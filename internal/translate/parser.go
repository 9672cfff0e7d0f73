package translate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseResponse extracts the suggestion object embedded in raw model output.
// A fenced code block takes precedence; once a fence is matched its content
// is the only candidate, and a parse failure inside it is terminal. Without
// a fence the scan falls back to the span between the first '{' and the last
// '}' in the whole text.
func ParseResponse(responseText string) (CommandSuggestion, error) {
	candidate, perr := locateJSON(responseText)
	if perr != nil {
		return CommandSuggestion{}, perr
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return CommandSuggestion{}, &ParsingError{
			Message:  "invalid JSON in model response",
			Fragment: candidate,
			Err:      err,
		}
	}

	s := CommandSuggestion{
		Command:              coerceString(payload["command"]),
		Explanation:          coerceString(payload["explanation"]),
		RequiresConfirmation: coerceBool(payload["requires_confirmation"]),
		FollowUp:             coerceString(payload["follow_up"]),
	}

	if s.Command == "" && s.FollowUp == "" {
		return CommandSuggestion{}, &ParsingError{
			Message:  "model returned empty command and follow_up",
			Fragment: candidate,
		}
	}

	return s, nil
}

// fencedObject matches the first triple-backtick block (optionally tagged
// json) containing an object, non-greedily up to the first closing brace
// that precedes the closing fence.
var fencedObject = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// locateJSON returns the candidate object substring. The brace scan assumes
// one logical object spans the slice; unrelated braces in surrounding prose
// make it capture too much or too little, and that behavior is kept.
func locateJSON(text string) (string, *ParsingError) {
	if m := fencedObject.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}

	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 {
		return "", &ParsingError{Message: "no JSON object found in response"}
	}
	if end < start {
		// A '}' before any '{'. The empty candidate fails JSON parsing
		// downstream, mirroring the no-fence degenerate slice.
		return "", nil
	}
	return text[start : end+1], nil
}

// coerceString maps an arbitrary JSON value onto a trimmed string: absent or
// null becomes empty, anything non-string is stringified.
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// coerceBool applies JSON truthiness: absent, null, false, 0, "", and empty
// collections are false, everything else true.
func coerceBool(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}
