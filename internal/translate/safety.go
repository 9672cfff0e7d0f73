package translate

import (
	"regexp"
	"strings"
)

// destructivePattern pairs a matcher with a stable tag used in logs and
// per-category tests.
type destructivePattern struct {
	Tag     string
	Matcher *regexp.Regexp
}

// destructivePatterns is the fixed denylist of obviously dangerous command
// shapes, compiled once at startup and never mutated. It is deliberately
// conservative: idioms it does not recognize simply fall through to the
// model's own confirmation flag.
var destructivePatterns = []destructivePattern{
	{"recursive-remove", regexp.MustCompile(`rm\s+-[fvi]*r[fvi]*\b`)},
	{"filesystem-format", regexp.MustCompile(`mkfs\b`)},
	{"raw-disk-write", regexp.MustCompile(`(?i)dd\s+if=`)},
	{"power-control", regexp.MustCompile(`\b(shutdown|reboot|poweroff)\b`)},
	{"pipe-to-interpreter", regexp.MustCompile(`\|\s*(bash|sh|zsh|python|curl)\b`)},
	{"privilege-escalation", regexp.MustCompile(`sudo\s+`)},
	{"world-writable-chmod", regexp.MustCompile(`chmod\s+777`)},
}

// MatchDestructive returns the tags of every destructive pattern matching
// the normalized (lowercased, trimmed) command string.
func MatchDestructive(command string) []string {
	normalized := strings.ToLower(strings.TrimSpace(command))
	var tags []string
	for _, p := range destructivePatterns {
		if p.Matcher.MatchString(normalized) {
			tags = append(tags, p.Tag)
		}
	}
	return tags
}

// Classify upgrades the suggestion's confirmation flag when its command
// matches a destructive pattern. Model output cannot bypass it: the flag is
// only ever raised, never lowered, so classification is idempotent. With
// allowDestructive set, or an empty command, the suggestion passes through
// unchanged.
func Classify(s CommandSuggestion, allowDestructive bool) CommandSuggestion {
	if allowDestructive || s.Command == "" {
		return s
	}
	if len(MatchDestructive(s.Command)) > 0 {
		return s.WithConfirmation(true)
	}
	return s
}
