package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/fpt/graspify-cli/internal/config"
)

const customGraspEntry = "other (type your own)"

// PromptGraspType asks which grasp type to narrow against. Catalog grasp
// types are offered as a selection; picking the custom entry opens a line
// editor for free text.
func PromptGraspType(catalog *config.Catalog) (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) == 0 {
		// Non-interactive input (piped stdin): read a bare line
		fmt.Print("Enter desired grasp type (e.g., 'precision grasp' or 'power grasp'): ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", errors.Wrap(err, "failed to read grasp type")
		}
		return strings.TrimSpace(line), nil
	}

	items := append([]string{}, catalog.GraspTypes...)
	items = append(items, customGraspEntry)

	prompt := promptui.Select{
		Label: "Desired grasp type",
		Items: items,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "> {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "{{ . }}",
		},
		Size: len(items),
	}

	_, result, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return "", errors.New("grasp type selection cancelled")
		}
		return "", errors.Wrap(err, "grasp type selection failed")
	}

	if result != customGraspEntry {
		return result, nil
	}

	return readCustomGraspType()
}

// readCustomGraspType reads a free-text grasp type with line editing
func readCustomGraspType() (string, error) {
	rl, err := readline.New("grasp type> ")
	if err != nil {
		return "", errors.Wrap(err, "failed to initialize line editor")
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return "", errors.Wrap(err, "failed to read grasp type")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}
