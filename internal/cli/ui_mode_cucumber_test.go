//go:build cucumber

package cli

import (
	"quizapp/internal/testutil"

	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizapp/internal/quiz"
	"quizapp/internal/ui/live"
)

// TestUIModeScenarios runs the UI mode feature scenarios.
func TestUIModeScenarios(t *testing.T) {
	featurePath, err := filepath.Abs(filepath.Join("..", "..", "spec", "features", "quiz-cli", "ui-mode.feature"))
	if err != nil {
		t.Fatalf("resolve feature path: %v", err)
	}
	testutil.Chdir(t, t.TempDir())
	suite := godog.TestSuite{
		Name:                "quiz-cli-ui-mode",
		ScenarioInitializer: InitializeUIModeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeUIModeScenario wires steps for UI mode scenarios.
func InitializeUIModeScenario(ctx *godog.ScenarioContext) {
	state := &uiModeScenarioState{}
	origTerminal := isTerminal
	origLive := runLive
	origInput := playInput
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(io.Writer) bool { return state.isTTY }
		runLive = func(context.Context, *quiz.Session, io.Reader, io.Writer, live.Options) error {
			state.liveCalled = true
			return nil
		}
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = origTerminal
		runLive = origLive
		playInput = origInput
		return ctx, nil
	})

	ctx.Step(`^a TTY stdout$`, state.givenTTY)
	ctx.Step(`^stdout is not a TTY$`, state.givenNonTTY)
	ctx.Step(`^the answers "([^"]*)"$`, state.givenAnswers)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^a live UI is shown$`, state.thenLiveUIShown)
	ctx.Step(`^the output uses plain prompts$`, state.thenPlainOutput)
	ctx.Step(`^a warning mentions "([^"]+)"$`, state.thenWarning)
	ctx.Step(`^every change is logged to stderr$`, state.thenVerboseLogged)
}

type uiModeScenarioState struct {
	isTTY      bool
	liveCalled bool
	code       int
	stdout     bytes.Buffer
	stderr     bytes.Buffer
}

func (s *uiModeScenarioState) reset() {
	s.isTTY = false
	s.liveCalled = false
	s.code = 0
	s.stdout.Reset()
	s.stderr.Reset()
	playInput = strings.NewReader("")
}

func (s *uiModeScenarioState) givenTTY() error {
	s.isTTY = true
	return nil
}

func (s *uiModeScenarioState) givenNonTTY() error {
	s.isTTY = false
	return nil
}

func (s *uiModeScenarioState) givenAnswers(answers string) error {
	lines := strings.Split(answers, ",")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	playInput = strings.NewReader(strings.Join(lines, "\n") + "\n")
	return nil
}

func (s *uiModeScenarioState) whenIRun(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 || args[0] != "quiz" {
		return fmt.Errorf("unexpected command %q", command)
	}
	s.code = Run(args[1:], &s.stdout, &s.stderr)
	if s.code != ExitOK {
		return fmt.Errorf("exit code %d: %s", s.code, s.stderr.String())
	}
	return nil
}

func (s *uiModeScenarioState) thenLiveUIShown() error {
	if !s.liveCalled {
		return fmt.Errorf("expected the live UI to run")
	}
	return nil
}

func (s *uiModeScenarioState) thenPlainOutput() error {
	if s.liveCalled {
		return fmt.Errorf("did not expect the live UI")
	}
	if !strings.Contains(s.stdout.String(), "Question 1 of 4") || !strings.Contains(s.stdout.String(), "Quiz complete!") {
		return fmt.Errorf("expected plain prompts, got %q", s.stdout.String())
	}
	return nil
}

func (s *uiModeScenarioState) thenWarning(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected warning %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *uiModeScenarioState) thenVerboseLogged() error {
	if strings.Count(s.stderr.String(), "[verbose]") < 8 {
		return fmt.Errorf("expected a verbose line per change, got %q", s.stderr.String())
	}
	return nil
}
