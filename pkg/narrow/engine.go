package narrow

import (
	"context"
	"strings"

	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
)

// Mode selects the narrowing variant.
type Mode int

const (
	// ModeSingle explores one flat candidate set. The catch-all may carry
	// leftover items and identical candidate sets are detected as cycles.
	ModeSingle Mode = iota
	// ModePaired explores a candidate pool alongside its complement. The
	// catch-all swaps the two pools instead of terminating; there is no
	// cross-swap cycle detection, only the step cap.
	ModePaired
)

// Selector supplies the user's choices. Implementations return the raw token
// the user typed; the engine owns validation so invalid input follows the
// fatal-selection policy regardless of the input channel.
type Selector interface {
	// PickBinary asks the user to choose between two remaining items and
	// returns the raw token ("1" or "2" expected).
	PickBinary(ctx context.Context, first, second string) (string, error)
	// PickOption presents a partition question and returns the raw token
	// ("A".."D" expected, case-insensitive).
	PickOption(ctx context.Context, question string) (string, error)
}

// FailureReason explains why a narrowing session ended without a unique item.
type FailureReason string

const (
	FailureNoExclusion   FailureReason = "no exclusion possible"
	FailureCycle         FailureReason = "cycle detected"
	FailureNoRefinement  FailureReason = "no refinement, selection covers entire set"
	FailureEmptyCatchAll FailureReason = "no items in catch-all"
	FailureCatchAllWhole FailureReason = "catch-all did not reduce the set"
	FailureInvalidChoice FailureReason = "invalid selection"
	FailureNoItems       FailureReason = "no candidate items remain"
	FailureStepLimit     FailureReason = "step limit reached"
	FailureOracle        FailureReason = "oracle unreachable"
)

// Result is the terminal state of one narrowing session. Either Item is set
// (terminal success) or Reason is (terminal failure), never both.
type Result struct {
	Item   string
	Reason FailureReason
	Steps  int
}

// Succeeded reports whether the session isolated a unique item.
func (r Result) Succeeded() bool { return r.Reason == "" }

// DefaultMaxSteps bounds a session that keeps making nominal progress (or, in
// paired mode, keeps swapping pools) without converging.
const DefaultMaxSteps = 32

// Config tunes an Engine.
type Config struct {
	Mode     Mode
	MaxSteps int // 0 = DefaultMaxSteps
}

// Engine drives repeated exclusion/partition/selection cycles over a
// candidate set until a unique item is isolated or a stall rule fires. State
// is carried explicitly through the loop; the engine itself is reusable
// across sessions.
type Engine struct {
	oracle   Oracle
	selector Selector
	mode     Mode
	maxSteps int
	log      *pkgLogger.Logger
}

// NewEngine builds an engine around an explicitly constructed oracle and
// selector. The oracle's lifecycle is the caller's concern.
func NewEngine(oracle Oracle, selector Selector, cfg Config) *Engine {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Engine{
		oracle:   oracle,
		selector: selector,
		mode:     cfg.Mode,
		maxSteps: maxSteps,
		log:      pkgLogger.NewComponentLogger("narrow"),
	}
}

// Run narrows the universe against the predicate to a single item.
//
// A non-nil error is returned only for context cancellation or a failed read
// from the selector; every oracle- or input-driven dead end is reported as a
// Result with a FailureReason instead.
func (e *Engine) Run(ctx context.Context, universe Set, pred Predicate) (Result, error) {
	if universe.Len() == 0 {
		return Result{Reason: FailureNoItems}, nil
	}

	// The excluded subset is the working set: items judged unsuitable for
	// the stated grasp are exactly the ones still in play.
	candidate, err := ExcludeUnsuitable(ctx, e.oracle, universe, pred)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		e.log.Error("Exclusion filter failed", "error", err)
		return Result{Reason: FailureOracle}, nil
	}
	e.log.InfoWithIntention(pkgLogger.IntentionStatus, "Excluded by predicate",
		"predicate", pred.Name, "excluded", candidate.String())

	if candidate.Len() == 0 {
		return Result{Reason: FailureNoExclusion}, nil
	}

	other := universe.Without(candidate)
	visited := make(map[string]bool)
	snappedKey := ""

	contract := CatchAllLeftover
	if e.mode == ModePaired {
		contract = CatchAllNone
	}

	for step := 1; step <= e.maxSteps; step++ {
		switch candidate.Len() {
		case 0:
			return Result{Reason: FailureNoItems, Steps: step}, nil
		case 1:
			return Result{Item: candidate.At(0), Steps: step}, nil
		case 2:
			item, reason, err := e.resolveBinary(ctx, candidate)
			if err != nil {
				return Result{}, err
			}
			return Result{Item: item, Reason: reason, Steps: step}, nil
		}

		if e.mode == ModeSingle {
			// Snapshot once per distinct candidate set; a retry after a
			// bucket parse failure must not count as a revisit.
			if key := candidate.Key(); key != snappedKey {
				if visited[key] {
					return Result{Reason: FailureCycle, Steps: step}, nil
				}
				visited[key] = true
				snappedKey = key
			}
		}

		proposal, err := ProposePartition(ctx, e.oracle, candidate, contract)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			e.log.Error("Partition proposal failed", "error", err)
			return Result{Reason: FailureOracle, Steps: step}, nil
		}

		e.log.InfoWithIntention(pkgLogger.IntentionQuestion, "Asking partition question",
			"step", step, "candidates", candidate.Len())
		token, err := e.selector.PickOption(ctx, proposal.Question)
		if err != nil {
			return Result{}, err
		}
		choice, ok := ParseChoice(token)
		if !ok {
			e.log.Warn("Unrecognized selection", "token", token)
			return Result{Reason: FailureInvalidChoice, Steps: step}, nil
		}

		if choice == ChoiceOther {
			if e.mode == ModePaired {
				// Switch to the unexplored pool; nothing is lost because the
				// leftover-free contract keeps every item in a named bucket.
				candidate, other = other, candidate
				e.log.InfoWithIntention(pkgLogger.IntentionStatus, "Swapped to the other pool",
					"candidates", candidate.Len())
				continue
			}
			leftover := universe.Intersect(proposal.Bucket(ChoiceOther).Items())
			if leftover.Len() == 0 {
				return Result{Reason: FailureEmptyCatchAll, Steps: step}, nil
			}
			if leftover.Equal(candidate) {
				return Result{Reason: FailureCatchAllWhole, Steps: step}, nil
			}
			candidate = leftover
			continue
		}

		// Clamp to the universe, not the current candidate: labels the oracle
		// invents are dropped, but a stale grouping that re-enters an earlier
		// set stays intact for the cycle check above.
		subset := universe.Intersect(proposal.Bucket(choice).Items())
		if subset.Len() == 0 {
			// Nothing recovered under the chosen tag: a parse failure, not
			// progress. Re-ask over the same candidate set.
			e.log.Warn("Could not extract items for selection, keeping previous set",
				"choice", string(choice))
			continue
		}
		if subset.Equal(candidate) {
			return Result{Reason: FailureNoRefinement, Steps: step}, nil
		}
		candidate = subset
		if e.mode == ModePaired {
			other = universe.Without(candidate)
		}
	}

	return Result{Reason: FailureStepLimit, Steps: e.maxSteps}, nil
}

// resolveBinary handles the two-items-left ordinal choice.
func (e *Engine) resolveBinary(ctx context.Context, candidate Set) (string, FailureReason, error) {
	e.log.InfoWithIntention(pkgLogger.IntentionQuestion, "Asking binary question",
		"first", candidate.At(0), "second", candidate.At(1))
	token, err := e.selector.PickBinary(ctx, candidate.At(0), candidate.At(1))
	if err != nil {
		return "", "", err
	}
	switch strings.TrimSpace(token) {
	case "1":
		return candidate.At(0), "", nil
	case "2":
		return candidate.At(1), "", nil
	}
	e.log.Warn("Unrecognized selection", "token", token)
	return "", FailureInvalidChoice, nil
}
