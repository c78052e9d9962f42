//go:build cucumber

package quiz

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestSessionScenarios runs the quiz session feature scenarios.
func TestSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "quiz-session", "session.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
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

// InitializeSessionScenario wires steps for quiz session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.session = nil
		return ctx, nil
	})

	ctx.Step(`^a quiz with a true/false, a single choice, a multi choice and a text question$`, state.givenScenarioQuiz)
	ctx.Step(`^the player is on question (\d+)$`, state.givenOnQuestion)
	ctx.Step(`^the player answers (true|false)$`, state.whenAnswersTrueFalse)
	ctx.Step(`^the player selects options (\d+) and (\d+)$`, state.whenSelectsOptions)
	ctx.Step(`^the player clears the selection$`, state.whenClearsSelection)
	ctx.Step(`^the player types "([^"]*)"$`, state.whenTypes)
	ctx.Step(`^the player advances$`, state.whenAdvances)
	ctx.Step(`^the player resets$`, state.whenResets)
	ctx.Step(`^the current index is (\d+)$`, state.thenCurrentIndex)
	ctx.Step(`^the player can proceed$`, state.thenCanProceed)
	ctx.Step(`^the player cannot proceed$`, state.thenCannotProceed)
	ctx.Step(`^the quiz is complete$`, state.thenComplete)
	ctx.Step(`^the quiz is not complete$`, state.thenNotComplete)
	ctx.Step(`^no answers are recorded$`, state.thenNoAnswers)
}

type sessionScenarioState struct {
	session *Session
}

// givenScenarioQuiz starts a session on the four question catalog.
func (s *sessionScenarioState) givenScenarioQuiz() error {
	s.session = NewSession(scenarioCatalog())
	return nil
}

// givenOnQuestion answers and advances until the target index is current.
func (s *sessionScenarioState) givenOnQuestion(target int) error {
	for s.session.CurrentIndex() < target {
		switch s.session.CurrentIndex() {
		case 0:
			s.session.RecordTrueFalse(true)
		case 1:
			s.session.RecordSingleChoice(0)
		case 2:
			s.session.RecordMultiChoice(0)
		case 3:
			s.session.RecordText("answer")
		}
		s.session.Advance()
	}
	if s.session.CurrentIndex() != target {
		return fmt.Errorf("expected to reach question %d, at %d", target, s.session.CurrentIndex())
	}
	return nil
}

func (s *sessionScenarioState) whenAnswersTrueFalse(value string) error {
	s.session.RecordTrueFalse(value == "true")
	return nil
}

func (s *sessionScenarioState) whenSelectsOptions(first, second int) error {
	s.session.RecordMultiChoice(first, second)
	return nil
}

func (s *sessionScenarioState) whenClearsSelection() error {
	s.session.RecordMultiChoice()
	return nil
}

func (s *sessionScenarioState) whenTypes(text string) error {
	s.session.RecordText(text)
	return nil
}

func (s *sessionScenarioState) whenAdvances() error {
	s.session.Advance()
	return nil
}

func (s *sessionScenarioState) whenResets() error {
	s.session.Reset()
	return nil
}

func (s *sessionScenarioState) thenCurrentIndex(want int) error {
	if got := s.session.CurrentIndex(); got != want {
		return fmt.Errorf("expected current index %d, got %d", want, got)
	}
	return nil
}

func (s *sessionScenarioState) thenCanProceed() error {
	if !s.session.CanProceed() {
		return fmt.Errorf("expected to be able to proceed")
	}
	return nil
}

func (s *sessionScenarioState) thenCannotProceed() error {
	if s.session.CanProceed() {
		return fmt.Errorf("expected proceed to be blocked")
	}
	return nil
}

func (s *sessionScenarioState) thenComplete() error {
	if !s.session.IsComplete() {
		return fmt.Errorf("expected quiz to be complete")
	}
	return nil
}

func (s *sessionScenarioState) thenNotComplete() error {
	if s.session.IsComplete() {
		return fmt.Errorf("expected quiz to be in progress")
	}
	return nil
}

func (s *sessionScenarioState) thenNoAnswers() error {
	if answers := s.session.State().Answers; len(answers) != 0 {
		return fmt.Errorf("expected no answers, got %d", len(answers))
	}
	return nil
}
