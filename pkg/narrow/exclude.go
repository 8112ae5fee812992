package narrow

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
)

var excludeLogger = pkgLogger.NewComponentLogger("exclusion")

// Predicate is a binary suitability test applied to candidate items, e.g. a
// grasp type. The working definitions are restated in every prompt to keep
// oracle judgments stable across calls.
type Predicate struct {
	Name        string
	Definitions []string
}

// ExcludeUnsuitable asks the oracle which members of the set fail the
// predicate and returns that subset. The returned set is always a subset of
// the input; labels the oracle invents are dropped with a warning.
//
// An empty result means "no exclusion possible" - either the oracle judged
// nothing unsuitable or its answer could not be parsed. The two are
// deliberately not distinguished here: neither is evidence of suitability,
// and the caller decides whether to halt. A non-nil error is only returned
// for transport failures.
func ExcludeUnsuitable(ctx context.Context, oracle Oracle, set Set, pred Predicate) (Set, error) {
	prompt := buildExclusionPrompt(set, pred)

	raw, err := oracle.Invoke(ctx, prompt)
	if err != nil {
		return Set{}, errors.Wrap(err, "exclusion filter oracle call failed")
	}
	excludeLogger.DebugWithIntention(pkgLogger.IntentionOracle, "Raw exclusion output", "text", raw)

	labels, err := ParseList(raw)
	if err != nil {
		excludeLogger.Warn("Failed to parse excluded items", "error", err)
		return Set{}, nil
	}

	excluded := set.Intersect(labels)
	if excluded.Len() < len(labels) {
		excludeLogger.Warn("Oracle returned labels outside the candidate set",
			"returned", len(labels), "matched", excluded.Len())
	}
	return excluded, nil
}

// buildExclusionPrompt lists the working definitions, the full candidate set
// and the required answer shape.
func buildExclusionPrompt(set Set, pred Predicate) string {
	var b strings.Builder

	b.WriteString("You are a robotic grasping expert. Here is a list of objects:\n")
	b.WriteString(set.String())
	b.WriteString("\n\n")

	if len(pred.Definitions) > 0 {
		b.WriteString("Definitions:\n")
		for i, def := range pred.Definitions {
			fmt.Fprintf(&b, "%d) %s\n", i+1, def)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Identify which of these objects are NOT suitable for a '%s' ", pred.Name)
	b.WriteString("based on the definitions above and common robotic manipulation techniques.\n\n")
	b.WriteString("Return ONLY the unsuitable items as a JSON list of strings, like:\n")
	b.WriteString(`["item1", "item2"]` + "\n")
	b.WriteString("Return only the list. No extra explanation or formatting.")

	return b.String()
}
