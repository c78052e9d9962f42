package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizapp/internal/question"
	"quizapp/internal/quiz"
)

// Model renders a quiz session with Bubble Tea. The session is the only
// source of truth; the model keeps widget state (option cursor, text field)
// and turns key presses into session calls.
type Model struct {
	session   *quiz.Session
	changes   <-chan quiz.Change
	keys      keyMap
	help      help.Model
	input     textinput.Model
	cursor    int
	prepared  int
	lastEvent string
	noColor   bool
	quitting  bool
}

// Options configures the live UI model.
type Options struct {
	NoColor   bool
	AltScreen bool
}

// NewModel constructs a model for session. changes may be nil when no
// controller is attached.
func NewModel(session *quiz.Session, changes <-chan quiz.Change, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Type your answer"
	input.CharLimit = 500
	input.Width = 60
	m := Model{
		session:  session,
		changes:  changes,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		prepared: -1,
		noColor:  opts.NoColor,
	}
	m.prepareInput()
	return m
}

// Init waits for the first session change and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), textinput.Blink)
}

// Update applies key presses to the session and consumes change messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.input.Width = max(typed.Width-4, 10)
		return m, nil
	case ChangeMsg:
		m.lastEvent = formatChange(m.session.Catalog(), typed.Change)
		return m, waitForChange(m.changes)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	if current, ok := m.session.CurrentQuestion(); ok && current.Kind() == question.KindTextEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current question or the completion screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.IsComplete() {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderCompletion(m.session, m.noColor),
			"",
			m.help.View(m.keys.bindingsFor("", true)),
			renderFooter(m.lastEvent, m.noColor),
		)
	}
	current, _ := m.session.CurrentQuestion()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.session, m.noColor),
		"",
		renderQuestion(current, m.noColor),
		"",
		m.renderBody(current),
		"",
		renderStatus(m.session, m.noColor),
		m.help.View(m.keys.bindingsFor(current.Kind(), false)),
		renderFooter(m.lastEvent, m.noColor),
	)
}

// Session returns the session the model presents.
func (m Model) Session() *quiz.Session {
	return m.session
}

// Cursor returns the highlighted option index on choice questions.
func (m Model) Cursor() int {
	return m.cursor
}

// ChangeMsg wraps a session change for Bubble Tea.
type ChangeMsg struct {
	Change quiz.Change
}

// waitForChange blocks until a session change is available.
func waitForChange(changes <-chan quiz.Change) tea.Cmd {
	return func() tea.Msg {
		if changes == nil {
			return nil
		}
		change, ok := <-changes
		if !ok {
			return nil
		}
		return ChangeMsg{Change: change}
	}
}

// handleKey routes a key press according to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.IsComplete() {
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.session.Reset()
			m.prepareInput()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	current, _ := m.session.CurrentQuestion()
	if current.Kind() == question.KindTextEntry {
		return m.handleTextKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.advance()
	}

	switch current.Kind() {
	case question.KindTrueFalse:
		switch {
		case key.Matches(msg, m.keys.True):
			m.session.RecordTrueFalse(true)
		case key.Matches(msg, m.keys.False):
			m.session.RecordTrueFalse(false)
		}
	case question.KindSingleChoice, question.KindMultiChoice:
		m.handleChoiceKey(msg, current)
	}
	return m, nil
}

// handleChoiceKey moves the cursor and selects options.
func (m *Model) handleChoiceKey(msg tea.KeyMsg, current question.Question) {
	count := question.OptionCount(current)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
		return
	case key.Matches(msg, m.keys.Select, m.keys.Toggle):
		m.choose(current, m.cursor)
		return
	}
	if index, ok := optionShortcut(msg, count); ok {
		m.cursor = index
		m.choose(current, index)
	}
}

// choose selects a single choice option or toggles a multi choice option.
func (m *Model) choose(current question.Question, index int) {
	if current.Kind() == question.KindSingleChoice {
		m.session.RecordSingleChoice(index)
		return
	}
	selection := quiz.MultiChoiceAnswer{}
	if recorded, ok := m.session.CurrentAnswer(); ok {
		selection = recorded.(quiz.MultiChoiceAnswer)
	}
	m.session.RecordAnswer(selection.Toggle(index))
}

// handleTextKey feeds the text field and records its value on change.
func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.advance()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	recorded := ""
	if answer, ok := m.session.CurrentAnswer(); ok {
		recorded = string(answer.(quiz.TextAnswer))
	}
	if value != recorded {
		m.session.RecordText(value)
	}
	return m, cmd
}

// advance moves on when the current answer allows it.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if !m.session.CanProceed() {
		return m, nil
	}
	m.session.Advance()
	m.prepareInput()
	return m, nil
}

// prepareInput resets widget state for the current question.
func (m *Model) prepareInput() {
	index := m.session.CurrentIndex()
	if index == m.prepared && !m.session.IsComplete() {
		return
	}
	m.prepared = index
	m.cursor = 0
	m.input.Reset()
	current, ok := m.session.CurrentQuestion()
	if !ok {
		m.input.Blur()
		return
	}
	answer, answered := m.session.CurrentAnswer()
	switch current.Kind() {
	case question.KindSingleChoice:
		if answered {
			m.cursor = int(answer.(quiz.SingleChoiceAnswer))
		}
	case question.KindTextEntry:
		if answered {
			m.input.SetValue(string(answer.(quiz.TextAnswer)))
			m.input.CursorEnd()
		}
		m.input.Focus()
	}
}

// optionShortcut maps digit keys 1-9 onto option indices.
func optionShortcut(msg tea.KeyMsg, count int) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	digit, err := strconv.Atoi(string(msg.Runes[0]))
	if err != nil || digit < 1 || digit > count {
		return 0, false
	}
	return digit - 1, true
}
