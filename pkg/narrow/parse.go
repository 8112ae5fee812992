package narrow

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotBracketed is returned when oracle text does not carry a bracketed
// list. Callers must treat it as "nothing recovered" and apply their stall
// policy; it is never fatal on its own.
var ErrNotBracketed = errors.New("response is not a bracketed list")

// invisiblePadding covers zero-width and non-breaking characters some models
// emit around lists.
const invisiblePadding = "\u200b\u200c\u200d\ufeff\u00a0"

// ParseList extracts a list of trimmed labels from raw oracle text.
//
// The text must, after trimming whitespace and invisible padding, begin with
// '[' and end with ']'. A strict JSON parse is attempted first so well-formed
// output round-trips exactly; on failure a manual tokenizer splits the
// interior on commas. An empty list ("[]") is a valid result, distinct from
// ErrNotBracketed.
func ParseList(raw string) ([]string, error) {
	text := trimPadding(raw)
	if len(text) < 2 || !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return nil, errors.Wrapf(ErrNotBracketed, "got %q", clip(text, 40))
	}

	if labels, ok := parseStrict(text); ok {
		return labels, nil
	}
	return parseLoose(text), nil
}

// parseStrict treats the bracketed text as a literal JSON array. Elements that
// are not strings are stringified so near-miss output like [1, 2] still parses.
func parseStrict(text string) ([]string, bool) {
	var elems []any
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, false
	}
	labels := make([]string, 0, len(elems))
	for _, e := range elems {
		var label string
		switch v := e.(type) {
		case string:
			label = v
		default:
			label = fmt.Sprint(v)
		}
		label = trimPadding(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels, true
}

// parseLoose removes the outer brackets, splits on commas and trims quoting.
// It tolerates single quotes and stray tokens the strict parse rejects.
func parseLoose(text string) []string {
	interior := text[1 : len(text)-1]
	parts := strings.Split(interior, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		label := trimPadding(p)
		label = strings.Trim(label, `'"`)
		label = trimPadding(label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func trimPadding(s string) string {
	return strings.Trim(strings.TrimSpace(s), invisiblePadding+" \t\r\n")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Choice identifies one of the four selection tags of a partition question.
type Choice string

const (
	ChoiceA     Choice = "A"
	ChoiceB     Choice = "B"
	ChoiceC     Choice = "C"
	ChoiceOther Choice = "D"
)

// NamedChoices are the three named-category tags, excluding the catch-all.
var NamedChoices = []Choice{ChoiceA, ChoiceB, ChoiceC}

// ParseChoice normalizes a user token to a Choice. The second return is false
// for anything outside A-D (case-insensitive).
func ParseChoice(token string) (Choice, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "A":
		return ChoiceA, true
	case "B":
		return ChoiceB, true
	case "C":
		return ChoiceC, true
	case "D":
		return ChoiceOther, true
	}
	return "", false
}

// categoryLineRe matches lines of the form `A) Name: [items]`. The catch-all
// line carries no brackets under the leftover-free contract and is skipped.
var categoryLineRe = regexp.MustCompile(`^\s*([A-D])\)\s*[^:\[\]]*:\s*(\[.*\])\s*$`)

// ParseCategories extracts, from a multi-line partition question, the item
// list under each tagged line. Lines that don't match the pattern are skipped
// and leave that tag's bucket absent; a parse failure on one line never
// affects the others.
func ParseCategories(question string) map[Choice][]string {
	buckets := make(map[Choice][]string)
	for _, line := range strings.Split(question, "\n") {
		m := categoryLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tag := Choice(m[1])
		labels, err := ParseList(m[2])
		if err != nil {
			continue
		}
		buckets[tag] = labels
	}
	return buckets
}
