// Package plain presents a quiz session as line-oriented text, for
// terminals without cursor control and for piped input.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"quizapp/internal/question"
	"quizapp/internal/quiz"
)

// ErrInputClosed reports that input ended before the last question was answered.
var ErrInputClosed = errors.New("input closed before the quiz was finished")

// Run prompts for each question on out and reads answers from in until the
// quiz is complete and the player declines to play again.
func Run(ctx context.Context, session *quiz.Session, in io.Reader, out io.Writer) error {
	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(in, stop)

	shown := -1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if session.IsComplete() {
			writeCompletion(out, session)
			fmt.Fprint(out, "Play again? [y/N]: ")
			line, err := nextLine(ctx, lines)
			if err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Fprintln(out)
					return nil
				}
				return err
			}
			if again, ok := ParseYesNo(line); !ok || !again {
				return nil
			}
			session.Reset()
			shown = -1
			continue
		}

		current, _ := session.CurrentQuestion()
		if shown != session.CurrentIndex() {
			writeQuestion(out, session, current)
			shown = session.CurrentIndex()
		}
		fmt.Fprint(out, "> ")
		line, err := nextLine(ctx, lines)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			return err
		}
		answer, err := ParseAnswer(current, line)
		if err != nil {
			fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		session.RecordAnswer(answer)
		if !session.CanProceed() {
			fmt.Fprintf(out, "  %s\n", proceedHint(current))
			continue
		}
		session.Advance()
	}
}

// inputLine is one line read from the input, or the error that ended it.
type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine. A blocked Read can outlive the
// caller; closing stop only ends delivery.
func readLines(in io.Reader, stop <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-stop:
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		} else {
			err = fmt.Errorf("read answer: %w", err)
		}
		select {
		case lines <- inputLine{err: err}:
		case <-stop:
		}
	}()
	return lines
}

// nextLine waits for the next input line or ctx cancellation. End of input
// is reported as io.EOF.
func nextLine(ctx context.Context, lines <-chan inputLine) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// ParseAnswer converts one input line into an answer for q.
func ParseAnswer(q question.Question, line string) (quiz.Answer, error) {
	trimmed := strings.TrimSpace(line)
	switch q.Kind() {
	case question.KindTrueFalse:
		switch strings.ToLower(trimmed) {
		case "t", "true", "y", "yes":
			return quiz.TrueFalseAnswer(true), nil
		case "f", "false", "n", "no":
			return quiz.TrueFalseAnswer(false), nil
		}
		return nil, errors.New("answer true or false")
	case question.KindSingleChoice:
		index, err := parseOption(trimmed, question.OptionCount(q))
		if err != nil {
			return nil, err
		}
		return quiz.SingleChoiceAnswer(index), nil
	case question.KindMultiChoice:
		fields := strings.FieldsFunc(trimmed, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		indices := make([]int, 0, len(fields))
		for _, field := range fields {
			index, err := parseOption(field, question.OptionCount(q))
			if err != nil {
				return nil, err
			}
			indices = append(indices, index)
		}
		return quiz.NewMultiChoiceAnswer(indices...), nil
	case question.KindTextEntry:
		return quiz.TextAnswer(line), nil
	default:
		return nil, fmt.Errorf("unsupported question type %s", q.Kind())
	}
}

// parseOption converts a 1-based option number into an index.
func parseOption(value string, count int) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil || number < 1 || number > count {
		return 0, fmt.Errorf("enter a number between 1 and %d", count)
	}
	return number - 1, nil
}

// ParseYesNo reads a yes/no reply. ok is false for anything else.
func ParseYesNo(line string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

func proceedHint(q question.Question) string {
	switch q.Kind() {
	case question.KindMultiChoice:
		return "select at least one option"
	case question.KindTextEntry:
		return "an answer is required"
	default:
		return "choose an answer"
	}
}

// writeQuestion prints the question header, text and options.
func writeQuestion(out io.Writer, session *quiz.Session, q question.Question) {
	fmt.Fprintf(out, "\nQuestion %d of %d (%s)\n", session.CurrentIndex()+1, session.QuestionCount(), q.Kind().Label())
	fmt.Fprintln(out, q.Text())
	if chooser, ok := q.(question.Chooser); ok {
		for i, option := range chooser.Options() {
			fmt.Fprintf(out, "  %d. %s\n", i+1, option)
		}
	}
	switch q.Kind() {
	case question.KindTrueFalse:
		fmt.Fprintln(out, "Answer t or f.")
	case question.KindSingleChoice:
		fmt.Fprintln(out, "Enter one option number.")
	case question.KindMultiChoice:
		fmt.Fprintln(out, "Enter option numbers separated by commas.")
	}
}

// writeCompletion prints every question with its recorded answer.
func writeCompletion(out io.Writer, session *quiz.Session) {
	fmt.Fprintln(out, "\nQuiz complete!")
	catalog := session.Catalog()
	for i := 0; i < catalog.Count(); i++ {
		q := catalog.At(i)
		answer, _ := session.AnswerAt(i)
		fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, q.Text(), quiz.Describe(q, answer))
	}
}
