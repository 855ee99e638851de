package normalize

import (
	"regexp"
	"strings"
)

// containmentFloor guards substring matching: a contained name shorter than
// this never matches, so short canonical names like "Network" cannot match
// unrelated long free-text descriptions.
const containmentFloor = 10

// minNameLength is the floor below which names are treated as garbage input.
const minNameLength = 3

// unicodeDashRe matches every dash/hyphen variant users paste in: hyphen,
// non-breaking hyphen, figure dash, en-dash, em-dash, horizontal bar and
// minus sign.
var unicodeDashRe = regexp.MustCompile("[-‐‑‒–—―−]+")

var whitespaceRe = regexp.MustCompile(`\s+`)

// ControlName normalizes a free-text control or threat name to its matching
// key: lowercase, all dash variants collapsed to a single ASCII hyphen, runs
// of whitespace collapsed to one space. Idempotent.
func ControlName(name string) string {
	key := strings.ToLower(name)
	key = unicodeDashRe.ReplaceAllString(key, "-")
	key = whitespaceRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// ControlNamesMatch reports whether a free-text control name refers to the
// same real-world control as a canonical library name. Exact match after
// normalization always wins; otherwise one name must contain the other and
// the contained name must be at least containmentFloor characters long.
// This substring heuristic is the whole algorithm - no edit distance.
func ControlNamesMatch(existingName, canonicalName string) bool {
	a := ControlName(existingName)
	b := ControlName(canonicalName)

	if len(a) < minNameLength || len(b) < minNameLength {
		return false
	}

	if a == b {
		return true
	}

	shorter, longer := a, b
	if len(b) < len(a) {
		shorter, longer = b, a
	}

	return len(shorter) >= containmentFloor && strings.Contains(longer, shorter)
}

// HasControl reports whether any of the existing control names matches the
// canonical library name. Deterministic and side-effect free; called dozens
// of times per scoring pass.
func HasControl(existingNames []string, canonicalName string) bool {
	for _, name := range existingNames {
		if ControlNamesMatch(name, canonicalName) {
			return true
		}
	}
	return false
}
