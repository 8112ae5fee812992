package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fpt/graspify-cli/internal/app"
	"github.com/fpt/graspify-cli/internal/config"
	"github.com/fpt/graspify-cli/pkg/client"
	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
	"github.com/fpt/graspify-cli/pkg/narrow"
)

// resolveStringFlag returns the non-empty value, preferring short flag over long flag
func resolveStringFlag(shortVal, longVal string) string {
	if shortVal != "" {
		return shortVal
	}
	return longVal
}

func printUsage() {
	fmt.Println("graspify - narrow down a grasp intention through oracle-guided dialogue")
	fmt.Println()
	fmt.Println("The session starts from an object catalog, excludes objects unsuitable")
	fmt.Println("for the requested grasp type, and repeatedly asks you multiple-choice")
	fmt.Println("questions until a single object remains.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  graspify                                  # Interactive grasp type selection")
	fmt.Println("  graspify -g \"precision grasp\"             # One-shot grasp type")
	fmt.Println("  graspify -b anthropic -g \"power grasp\"    # Use Anthropic backend")
	fmt.Println("  graspify --catalog objects.yaml           # Custom object catalog")
	fmt.Println("  graspify --paired                         # Explore paired candidate/other pools")
	fmt.Println("  graspify -v -g \"power grasp\"              # Enable verbose debug logging")
	fmt.Println()
}

func main() {
	ctx := context.Background()

	// Define command line flags
	var backend = flag.String("b", "", "Oracle backend (ollama, anthropic, openai, or gemini)")
	var backendLong = flag.String("backend", "", "Oracle backend (ollama, anthropic, openai, or gemini)")
	var model = flag.String("m", "", "Model name to use")
	var modelLong = flag.String("model", "", "Model name to use")
	var settingsPath = flag.String("settings", "", "Path to settings file")
	var catalogPath = flag.String("catalog", "", "Path to object catalog YAML file")
	var graspType = flag.String("g", "", "Grasp type to narrow against (e.g. 'precision grasp')")
	var graspTypeLong = flag.String("grasp", "", "Grasp type to narrow against (e.g. 'precision grasp')")
	var paired = flag.Bool("paired", false, "Explore paired candidate/other pools instead of one flat set")
	var maxSteps = flag.Int("max-steps", 0, "Maximum narrowing steps (0 = settings default)")
	var verbose = flag.Bool("v", false, "Enable verbose logging (debug level)")
	var verboseLong = flag.Bool("verbose", false, "Enable verbose logging (debug level)")
	var help = flag.Bool("h", false, "Show this help message")
	var helpLong = flag.Bool("help", false, "Show this help message")

	// Custom usage function
	flag.Usage = func() {
		printUsage()
		fmt.Println("Flags:")
		flag.PrintDefaults()
	}

	// Parse flags
	flag.Parse()

	// Handle help flag
	if *help || *helpLong {
		flag.Usage()
		return
	}

	// Resolve long/short flag conflicts (prefer the one that was set)
	resolvedBackend := resolveStringFlag(*backend, *backendLong)
	resolvedModel := resolveStringFlag(*model, *modelLong)
	resolvedGraspType := resolveStringFlag(*graspType, *graspTypeLong)
	resolvedVerbose := *verbose || *verboseLong

	// A bare positional argument also works as the grasp type
	if resolvedGraspType == "" && len(flag.Args()) > 0 {
		resolvedGraspType = strings.TrimSpace(strings.Join(flag.Args(), " "))
	}

	// Load settings
	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Printf("Warning: failed to load settings: %v\n", err)
		settings = config.GetDefaultSettings()
	}

	// Initialize structured logger based on settings
	logLevel := settings.Narrow.LogLevel
	if resolvedVerbose {
		logLevel = "debug"
	}
	out := os.Stdout
	pkgLogger.SetGlobalLoggerWithConsoleWriter(pkgLogger.LogLevel(logLevel), out)
	logger := pkgLogger.NewLoggerWithConsoleWriter(pkgLogger.LogLevel(logLevel), out)

	if resolvedVerbose {
		logger.DebugWithIntention(pkgLogger.IntentionStatistics, "Verbose logging enabled", "log_level", logLevel)
	}

	// Override settings with command line arguments
	if resolvedBackend != "" {
		if resolvedModel == "" {
			settings.LLM = config.GetDefaultLLMSettingsForBackend(resolvedBackend)
		} else {
			backendDefaults := config.GetDefaultLLMSettingsForBackend(resolvedBackend)
			settings.LLM = backendDefaults
			settings.LLM.Model = resolvedModel
		}
	} else if resolvedModel != "" {
		settings.LLM.Model = resolvedModel
	}
	if *paired {
		settings.Narrow.Paired = true
	}
	if *maxSteps > 0 {
		settings.Narrow.MaxSteps = *maxSteps
	}

	// Validate settings
	if err := config.ValidateSettings(settings); err != nil {
		logger.Error("Settings validation failed", "error", err)
		os.Exit(1)
	}

	// Load the object catalog
	catalog, err := config.LoadCatalog(*catalogPath)
	if err != nil {
		logger.Error("Failed to load object catalog", "error", err)
		os.Exit(1)
	}

	// Create the oracle client and wrap it with the retry policy. The oracle
	// lives for exactly one narrowing session.
	oracle, err := client.NewOracle(settings.LLM)
	if err != nil {
		logger.Error("Failed to create oracle client", "error", err, "backend", settings.LLM.Backend)
		os.Exit(1)
	}
	retryOracle := narrow.NewRetryOracle(oracle, settings.Oracle.RetrySettings())

	colored := term.IsTerminal(int(os.Stdout.Fd()))
	if colored {
		app.WriteSplashScreen(out, true)
	}
	app.WriteResponseHeader(out, retryOracle.ModelID(), colored)

	// Ask for the grasp type if it wasn't given on the command line
	if resolvedGraspType == "" {
		resolvedGraspType, err = app.PromptGraspType(catalog)
		if err != nil {
			logger.Error("Failed to read grasp type", "error", err)
			os.Exit(1)
		}
	}

	selector := app.NewConsoleSelector(out)
	session := app.NewSession(retryOracle, selector, catalog, settings, out)
	if err := session.Run(ctx, resolvedGraspType); err != nil {
		logger.Error("Narrowing session failed", "error", err)
		os.Exit(1)
	}
}
