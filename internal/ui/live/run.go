package live

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizapp/internal/quiz"
)

// Run presents session until the player quits or ctx is cancelled.
func Run(ctx context.Context, session *quiz.Session, in io.Reader, out io.Writer, opts Options) error {
	controller := Attach(session)
	defer controller.Close()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(NewModel(session, controller.Changes(), opts), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
