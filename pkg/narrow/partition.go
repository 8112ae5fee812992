package narrow

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
)

var partitionLogger = pkgLogger.NewComponentLogger("partition")

// CatchAllContract selects how the fourth option of a partition question is
// treated.
type CatchAllContract int

const (
	// CatchAllLeftover lets the catch-all carry items the oracle could not
	// place into the three named categories. Used when a single flat set is
	// explored.
	CatchAllLeftover CatchAllContract = iota
	// CatchAllNone forces every item into one of the three named categories;
	// the catch-all is presented without content. Used when two paired pools
	// are explored and the catch-all means "switch to the other pool".
	CatchAllNone
)

// Proposal is the oracle-authored four-way split of a candidate set: the
// verbatim question to show the user plus the items recovered under each tag.
type Proposal struct {
	Question string
	buckets  map[Choice]Set
}

// Bucket returns the items recovered under the given tag. An unrecovered tag
// yields an empty set.
func (p Proposal) Bucket(c Choice) Set { return p.buckets[c] }

// Validate reports structural problems with the proposal relative to its
// operand set: empty named categories, overlapping categories, or items that
// appear nowhere. Problems are advisory; the engine logs them and relies on
// its stall rules rather than rejecting the proposal outright.
func (p Proposal) Validate(operand Set, contract CatchAllContract) []string {
	var problems []string

	seen := make(map[string]Choice)
	for _, c := range NamedChoices {
		bucket := p.buckets[c]
		if bucket.Len() == 0 {
			problems = append(problems, fmt.Sprintf("category %s is empty", c))
			continue
		}
		for _, label := range bucket.Items() {
			if prev, dup := seen[label]; dup {
				problems = append(problems, fmt.Sprintf("%q appears in both %s and %s", label, prev, c))
				continue
			}
			seen[label] = c
		}
	}
	if contract == CatchAllLeftover {
		for _, label := range p.buckets[ChoiceOther].Items() {
			if prev, dup := seen[label]; dup {
				problems = append(problems, fmt.Sprintf("%q appears in both %s and the catch-all", label, prev))
			}
			seen[label] = ChoiceOther
		}
	}

	for _, label := range operand.Items() {
		if _, ok := seen[label]; !ok {
			problems = append(problems, fmt.Sprintf("%q was not placed in any category", label))
		}
	}
	return problems
}

// ProposePartition asks the oracle to split a candidate set of size >= 3 into
// three named categories plus a catch-all, then recovers each category's
// members from the returned question text. Recovery is local; no second
// oracle round trip is spent on extraction.
func ProposePartition(ctx context.Context, oracle Oracle, set Set, contract CatchAllContract) (Proposal, error) {
	if set.Len() < 3 {
		return Proposal{}, errors.Errorf("partition needs at least 3 items, got %d", set.Len())
	}

	prompt := buildPartitionPrompt(set, contract)
	question, err := oracle.Invoke(ctx, prompt)
	if err != nil {
		return Proposal{}, errors.Wrap(err, "partition proposer oracle call failed")
	}
	question = strings.TrimSpace(question)
	partitionLogger.DebugWithIntention(pkgLogger.IntentionOracle, "Raw partition output", "text", question)

	// Buckets keep whatever labels the question text carries, even labels
	// outside the operand. A stale grouping must stay visible so the engine's
	// cycle detection can catch an oracle re-proposing an earlier split.
	buckets := make(map[Choice]Set, 4)
	for tag, labels := range ParseCategories(question) {
		if tag == ChoiceOther && contract == CatchAllNone {
			// Leftover-free contract: a bracketed catch-all is an oracle
			// formatting slip, not a real bucket.
			continue
		}
		buckets[tag] = NewSet(labels...)
	}

	proposal := Proposal{Question: question, buckets: buckets}
	for _, problem := range proposal.Validate(set, contract) {
		partitionLogger.Warn("Partition proposal problem", "problem", problem)
	}
	return proposal, nil
}

func buildPartitionPrompt(set Set, contract CatchAllContract) string {
	var b strings.Builder

	b.WriteString("Split the following objects into exactly 3 non-overlapping categories. ")
	b.WriteString("Each category must have at least ONE item. ")
	switch contract {
	case CatchAllLeftover:
		b.WriteString("If any items don't fit into those 3 categories, place them into a 4th option 'D) Other'. ")
	case CatchAllNone:
		b.WriteString("Every item MUST be placed into one of the 3 categories. ")
		b.WriteString("The 4th option 'D) Other' is a fixed escape choice and must carry NO items and NO brackets. ")
	}
	b.WriteString("Provide a multiple-choice question with the format:\n\n")
	b.WriteString("Question: Which group of objects are you thinking about?\n")
	b.WriteString("A) CategoryName: [list, of, items]\n")
	b.WriteString("B) CategoryName: [list, of, items]\n")
	b.WriteString("C) CategoryName: [list, of, items]\n")
	switch contract {
	case CatchAllLeftover:
		b.WriteString("D) Other: [any leftover items]\n\n")
	case CatchAllNone:
		b.WriteString("D) Other\n\n")
	}
	b.WriteString("Do not include empty lists. Do not overlap items. Use each object exactly once. ")
	b.WriteString("Return only this formatted question (no extra text or explanation).\n\n")
	b.WriteString("Objects:\n")
	b.WriteString(set.String())

	return b.String()
}
