package cli

import (
	"flag"
	"fmt"
	"io"

	"quizapp/internal/question"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .quiz/config.yml)")
		questionsPath := flags.String("questions", "", "Path to a question catalog (overrides config)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		s, err := loadSettings(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		catalog, source, err := loadCatalog(*questionsPath, s)
		if err != nil {
			fmt.Fprintf(stderr, "List failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintf(stdout, "%d questions from %s\n", catalog.Count(), source)
		for i, q := range catalog.Questions() {
			fmt.Fprintf(stdout, "\n%d. [%s] %s\n", i+1, q.Kind().Label(), q.Text())
			if chooser, ok := q.(question.Chooser); ok {
				for optionIndex, option := range chooser.Options() {
					fmt.Fprintf(stdout, "   %d) %s\n", optionIndex+1, option)
				}
			}
		}
		return ExitOK
	}
}
