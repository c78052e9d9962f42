package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizapp/internal/question"
	"quizapp/internal/quiz"
)

const (
	colorAccent = lipgloss.Color("33")
	colorMuted  = lipgloss.Color("242")
	colorDim    = lipgloss.Color("244")
	colorGood   = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("214")
)

// renderHeader renders the progress line.
func renderHeader(session *quiz.Session, noColor bool) string {
	line := fmt.Sprintf("Question %d of %d  %s", session.CurrentIndex()+1, session.QuestionCount(), progressBar(session.CurrentIndex(), session.QuestionCount(), 20))
	return stylize(line, noColor, colorAccent)
}

// renderQuestion renders the kind label and question text.
func renderQuestion(current question.Question, noColor bool) string {
	label := stylize(current.Kind().Label(), noColor, colorMuted)
	text := current.Text()
	if !noColor {
		text = lipgloss.NewStyle().Bold(true).Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, text)
}

// renderBody renders the input widget for the current question.
func (m Model) renderBody(current question.Question) string {
	answer, _ := m.session.CurrentAnswer()
	switch typed := current.(type) {
	case question.TrueFalse:
		return renderTrueFalse(answer, m.noColor)
	case question.SingleChoice:
		selected := -1
		if choice, ok := answer.(quiz.SingleChoiceAnswer); ok {
			selected = int(choice)
		}
		return renderOptions(typed.Options(), m.cursor, func(i int) bool { return i == selected }, "(•)", "( )", m.noColor)
	case question.MultiChoice:
		selection, _ := answer.(quiz.MultiChoiceAnswer)
		return renderOptions(typed.Options(), m.cursor, selection.Contains, "[x]", "[ ]", m.noColor)
	case question.TextEntry:
		return m.input.View()
	default:
		return ""
	}
}

// renderTrueFalse renders the two true/false buttons.
func renderTrueFalse(answer quiz.Answer, noColor bool) string {
	value, answered := answer.(quiz.TrueFalseAnswer)
	button := func(label string, active bool) string {
		if active {
			return stylize("[ "+label+" ]", noColor, colorGood)
		}
		return "  " + label + "  "
	}
	return button("True", answered && bool(value)) + "   " + button("False", answered && !bool(value))
}

// renderOptions renders a choice list with a cursor and selection markers.
func renderOptions(options []string, cursor int, selected func(int) bool, on, off string, noColor bool) string {
	lines := make([]string, 0, len(options))
	for i, option := range options {
		pointer := "  "
		if i == cursor {
			pointer = "> "
		}
		marker := off
		if selected(i) {
			marker = on
		}
		line := fmt.Sprintf("%s%s %d. %s", pointer, marker, i+1, option)
		if selected(i) {
			line = stylize(line, noColor, colorGood)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderStatus tells the player whether they may continue.
func renderStatus(session *quiz.Session, noColor bool) string {
	if !session.CanProceed() {
		return stylize(proceedHint(session), noColor, colorWarn)
	}
	if session.IsLastQuestion() {
		return stylize("Press enter to finish", noColor, colorGood)
	}
	return stylize("Press enter for the next question", noColor, colorGood)
}

// proceedHint explains what the current question still needs.
func proceedHint(session *quiz.Session) string {
	current, ok := session.CurrentQuestion()
	if !ok {
		return ""
	}
	switch current.Kind() {
	case question.KindMultiChoice:
		return "Select at least one option to continue"
	case question.KindTextEntry:
		return "Type an answer to continue"
	default:
		return "Choose an answer to continue"
	}
}

// renderCompletion renders the final screen with every recorded answer.
func renderCompletion(session *quiz.Session, noColor bool) string {
	lines := []string{stylize("Quiz complete!", noColor, colorGood), ""}
	catalog := session.Catalog()
	for i := 0; i < catalog.Count(); i++ {
		q := catalog.At(i)
		answer, _ := session.AnswerAt(i)
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, q.Text()),
			stylize("   "+quiz.Describe(q, answer), noColor, colorMuted),
		)
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the last session change.
func renderFooter(lastEvent string, noColor bool) string {
	if lastEvent == "" {
		return ""
	}
	return stylize("Last event: "+lastEvent, noColor, colorDim)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
