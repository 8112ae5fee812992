package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/fpt/graspify-cli/internal/config"
	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
	"github.com/fpt/graspify-cli/pkg/narrow"
)

// ConsoleSelector reads narrowing choices from the terminal. Tokens are
// returned raw; the engine decides what counts as a valid selection.
type ConsoleSelector struct {
	out io.Writer
}

// NewConsoleSelector creates a selector writing prompts to out
func NewConsoleSelector(out io.Writer) *ConsoleSelector {
	return &ConsoleSelector{out: out}
}

// PickBinary asks the user to choose between the last two candidates
func (s *ConsoleSelector) PickBinary(ctx context.Context, first, second string) (string, error) {
	fmt.Fprintf(s.out, "\nOnly two candidates remain:\n")
	fmt.Fprintf(s.out, "  1) %s\n", first)
	fmt.Fprintf(s.out, "  2) %s\n", second)
	return s.readToken(ctx, "Which one is it? Enter 1 or 2")
}

// PickOption presents a partition question and reads the chosen tag
func (s *ConsoleSelector) PickOption(ctx context.Context, question string) (string, error) {
	fmt.Fprintf(s.out, "\n%s\n", question)
	return s.readToken(ctx, "Your choice (A/B/C/D)")
}

func (s *ConsoleSelector) readToken(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) == 0 {
		// Non-interactive input (piped stdin): read a bare line
		fmt.Fprintf(s.out, "%s: ", label)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", errors.Wrap(err, "failed to read selection")
		}
		return strings.TrimSpace(line), nil
	}

	prompt := promptui.Prompt{
		Label: label,
	}
	result, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return "", errors.Wrap(context.Canceled, "selection interrupted")
		}
		return "", errors.Wrap(err, "failed to read selection")
	}
	return strings.TrimSpace(result), nil
}

// Session runs one narrowing dialogue from catalog universe to a reported
// grasp intention.
type Session struct {
	engine  *narrow.Engine
	oracle  narrow.Oracle
	catalog *config.Catalog
	out     io.Writer
	log     *pkgLogger.Logger
}

// NewSession wires an engine around the given oracle and selector. The oracle
// is constructed by the caller and lives for exactly one session.
func NewSession(oracle narrow.Oracle, selector narrow.Selector, catalog *config.Catalog, settings *config.Settings, out io.Writer) *Session {
	mode := narrow.ModeSingle
	if settings.Narrow.Paired {
		mode = narrow.ModePaired
	}
	engine := narrow.NewEngine(oracle, selector, narrow.Config{
		Mode:     mode,
		MaxSteps: settings.Narrow.MaxSteps,
	})

	return &Session{
		engine:  engine,
		oracle:  oracle,
		catalog: catalog,
		out:     out,
		log:     pkgLogger.NewComponentLogger("session"),
	}
}

// Run narrows the catalog universe against the requested grasp type and
// prints the outcome.
func (s *Session) Run(ctx context.Context, graspType string) error {
	universe := s.catalog.Universe()

	fmt.Fprintf(s.out, "Objects on the table: %s\n", universe.String())
	fmt.Fprintf(s.out, "Desired grasp type: %s\n", graspType)
	s.log.InfoWithIntention(pkgLogger.IntentionStatus, "Starting narrowing session",
		"objects", universe.Len(), "grasp_type", graspType, "model", s.oracle.ModelID())

	result, err := s.engine.Run(ctx, universe, s.catalog.Predicate(graspType))
	if err != nil {
		return errors.Wrap(err, "narrowing session aborted")
	}

	if result.Succeeded() {
		fmt.Fprintf(s.out, "\n✅ Final grasp intention: %s\n", result.Item)
		s.log.InfoWithIntention(pkgLogger.IntentionSuccess, "Session finished",
			"item", result.Item, "steps", result.Steps)
		return nil
	}

	fmt.Fprintf(s.out, "\n❌ Could not determine the object: %s.\n", result.Reason)
	s.log.InfoWithIntention(pkgLogger.IntentionStatus, "Session ended without a unique item",
		"reason", string(result.Reason), "steps", result.Steps)
	return nil
}
