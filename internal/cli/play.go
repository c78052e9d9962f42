package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"quizapp/internal/config"
	"quizapp/internal/quiz"
	"quizapp/internal/ui/live"
	"quizapp/internal/ui/plain"
)

var (
	runLive  = live.Run
	runPlain = plain.Run
)

// playInput allows tests to override stdin for answers.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quiz/config.yml)")
		questionsPath := flags.String("questions", "", "Path to a question catalog (overrides config)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (overrides config)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		verbose := flags.Bool("verbose", false, "Log every session change to stderr")
		altScreen := flags.Bool("alt-screen", false, "Run the live UI in the alternate screen")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		s, err := loadSettings(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		applyPlayFlags(&s.cfg, flags, *uiMode, *noColor, *verbose)

		catalog, _, err := loadCatalog(*questionsPath, s)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions:\n%v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(s.cfg.UI.Mode, s.cfg.Verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid UI mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		session := quiz.NewSession(catalog)
		if s.cfg.Verbose {
			unsubscribe := session.Subscribe(quiz.VerboseObserver(stderr, catalog))
			defer unsubscribe()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			err = runLive(ctx, session, playInput, stdout, live.Options{NoColor: s.cfg.UI.NoColor, AltScreen: *altScreen})
		} else {
			err = runPlain(ctx, session, playInput, stdout)
		}
		switch {
		case err == nil:
			return ExitOK
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(stderr, "Quiz interrupted.")
			return ExitError
		case errors.Is(err, plain.ErrInputClosed):
			fmt.Fprintf(stderr, "Quiz ended: %v\n", err)
			return ExitError
		default:
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
	}
}

// applyPlayFlags lets explicitly set flags override config values.
func applyPlayFlags(cfg *config.Config, flags *flag.FlagSet, uiMode string, noColor, verbose bool) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI.Mode = uiMode
		case "no-color":
			cfg.UI.NoColor = noColor
		case "verbose":
			cfg.Verbose = verbose
		}
	})
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}
}
