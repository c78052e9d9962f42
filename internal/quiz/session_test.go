package quiz

import (
	"testing"
)

// TestSessionScenario walks the four question quiz end to end.
func TestSessionScenario(t *testing.T) {
	session := NewSession(scenarioCatalog())
	tf := session.Catalog().At(0)

	if session.CurrentIndex() != 0 {
		t.Fatalf("expected index 0, got %d", session.CurrentIndex())
	}
	if CanProceed(tf, nil) {
		t.Fatalf("expected no proceed without an answer")
	}

	session.RecordTrueFalse(true)
	if !CanProceed(tf, TrueFalseAnswer(true)) || !session.CanProceed() {
		t.Fatalf("expected proceed after answering")
	}
	session.Advance()
	if session.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", session.CurrentIndex())
	}

	session.RecordSingleChoice(2)
	session.Advance()

	session.RecordMultiChoice(1, 3)
	if !session.CanProceed() {
		t.Fatalf("expected proceed with two selections")
	}
	session.RecordMultiChoice()
	if session.CanProceed() {
		t.Fatalf("expected no proceed with empty selection")
	}
	session.RecordMultiChoice(0)
	session.Advance()

	session.RecordText("  ")
	if session.CanProceed() {
		t.Fatalf("expected no proceed with blank text")
	}
	session.RecordText("  hi  ")
	if !session.CanProceed() {
		t.Fatalf("expected proceed with text")
	}
	if !session.IsLastQuestion() {
		t.Fatalf("expected last question")
	}
	session.Advance()

	if session.CurrentIndex() != 4 || session.CurrentIndex() != session.QuestionCount() {
		t.Fatalf("expected index 4, got %d", session.CurrentIndex())
	}
	if !session.IsComplete() {
		t.Fatalf("expected complete")
	}
	if _, ok := session.CurrentQuestion(); ok {
		t.Fatalf("expected no current question once complete")
	}
	if answer, ok := session.AnswerAt(3); !ok || answer != TextAnswer("  hi  ") {
		t.Fatalf("expected raw text answer to be kept, got %v", answer)
	}

	session.Reset()
	state := session.State()
	if state.CurrentIndex != 0 || len(state.Answers) != 0 || session.IsComplete() {
		t.Fatalf("expected fresh state after reset, got %+v", state)
	}
}

// TestAdvanceIsMonotonicAndBounded verifies repeated advances stop at completion.
func TestAdvanceIsMonotonicAndBounded(t *testing.T) {
	session := NewSession(scenarioCatalog())
	previous := session.CurrentIndex()
	for i := 0; i < 10; i++ {
		session.Advance()
		if session.CurrentIndex() < previous {
			t.Fatalf("index decreased from %d to %d", previous, session.CurrentIndex())
		}
		if session.CurrentIndex() > session.QuestionCount() {
			t.Fatalf("index %d exceeds question count", session.CurrentIndex())
		}
		previous = session.CurrentIndex()
	}
	if !session.IsComplete() {
		t.Fatalf("expected completion")
	}
}

// TestAdvanceAtCompletionIsNoop verifies the terminal state is idempotent.
func TestAdvanceAtCompletionIsNoop(t *testing.T) {
	session := NewSession(scenarioCatalog())
	session.RecordTrueFalse(false)
	for !session.IsComplete() {
		session.Advance()
	}
	before := session.State()
	notified := 0
	session.Subscribe(ObserverFunc(func(Change) { notified++ }))
	session.Advance()
	after := session.State()
	if after.CurrentIndex != before.CurrentIndex || len(after.Answers) != len(before.Answers) {
		t.Fatalf("expected unchanged state, got %+v", after)
	}
	if notified != 0 {
		t.Fatalf("expected no notification for a no-op advance")
	}
}

// TestRecordAnswerLastWriteWins verifies answers overwrite rather than accumulate.
func TestRecordAnswerLastWriteWins(t *testing.T) {
	session := NewSession(scenarioCatalog())
	session.RecordTrueFalse(true)
	session.RecordTrueFalse(false)
	state := session.State()
	if len(state.Answers) != 1 {
		t.Fatalf("expected one answer, got %d", len(state.Answers))
	}
	if state.Answers[0] != TrueFalseAnswer(false) {
		t.Fatalf("expected last answer to win, got %v", state.Answers[0])
	}
}

// TestResetFromAnyState verifies reset always returns to the first question.
func TestResetFromAnyState(t *testing.T) {
	for steps := 0; steps <= 4; steps++ {
		session := NewSession(scenarioCatalog())
		for i := 0; i < steps; i++ {
			if i == 0 {
				session.RecordTrueFalse(true)
			}
			session.Advance()
		}
		session.Reset()
		state := session.State()
		if state.CurrentIndex != 0 || len(state.Answers) != 0 {
			t.Fatalf("after %d steps: expected fresh state, got %+v", steps, state)
		}
	}
}

// TestEarlierAnswersAreNotEditable verifies recording only targets the current question.
func TestEarlierAnswersAreNotEditable(t *testing.T) {
	session := NewSession(scenarioCatalog())
	session.RecordTrueFalse(true)
	session.Advance()
	session.RecordSingleChoice(0)
	if answer, _ := session.AnswerAt(0); answer != TrueFalseAnswer(true) {
		t.Fatalf("expected first answer untouched, got %v", answer)
	}
	expectViolation(t, func() { session.RecordTrueFalse(false) })
}

// TestRecordAnswerPreconditions verifies caller bugs fail fast.
func TestRecordAnswerPreconditions(t *testing.T) {
	cases := []struct {
		name   string
		setup  int
		answer Answer
	}{
		{name: "wrong kind", setup: 0, answer: TextAnswer("true")},
		{name: "nil answer", setup: 0, answer: nil},
		{name: "option too high", setup: 1, answer: SingleChoiceAnswer(4)},
		{name: "negative option", setup: 1, answer: SingleChoiceAnswer(-1)},
		{name: "multi option out of range", setup: 2, answer: NewMultiChoiceAnswer(0, 9)},
		{name: "complete", setup: 4, answer: TextAnswer("late")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			session := NewSession(scenarioCatalog())
			for i := 0; i < tc.setup; i++ {
				session.Advance()
			}
			before := session.State()
			violation := expectViolation(t, func() { session.RecordAnswer(tc.answer) })
			if violation.Op != "record" {
				t.Fatalf("expected record violation, got %+v", violation)
			}
			if len(session.State().Answers) != len(before.Answers) {
				t.Fatalf("expected state untouched after violation")
			}
		})
	}
}

// TestStateIsASnapshot verifies callers cannot mutate session state.
func TestStateIsASnapshot(t *testing.T) {
	session := NewSession(scenarioCatalog())
	session.RecordTrueFalse(true)
	state := session.State()
	state.Answers[0] = TrueFalseAnswer(false)
	state.CurrentIndex = 3
	if answer, _ := session.CurrentAnswer(); answer != TrueFalseAnswer(true) {
		t.Fatalf("expected session answer untouched, got %v", answer)
	}
	if session.CurrentIndex() != 0 {
		t.Fatalf("expected session index untouched")
	}
}

// TestSubscribeNotifiesInOrder verifies observers see each change once.
func TestSubscribeNotifiesInOrder(t *testing.T) {
	session := NewSession(scenarioCatalog())
	var seen []string
	unsubscribeFirst := session.Subscribe(ObserverFunc(func(change Change) {
		seen = append(seen, "first:"+change.Intent.Name())
	}))
	session.Subscribe(ObserverFunc(func(change Change) {
		seen = append(seen, "second:"+change.Intent.Name())
		if change.SessionID != session.ID() {
			t.Fatalf("expected session id on change")
		}
	}))

	session.RecordTrueFalse(true)
	session.Advance()
	unsubscribeFirst()
	unsubscribeFirst()
	session.Reset()

	want := []string{"first:record", "second:record", "first:advance", "second:advance", "second:reset"}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

// TestChangeCarriesBeforeAndAfter verifies observers get both snapshots.
func TestChangeCarriesBeforeAndAfter(t *testing.T) {
	session := NewSession(scenarioCatalog())
	var last Change
	session.Subscribe(ObserverFunc(func(change Change) { last = change }))
	session.RecordTrueFalse(true)
	session.Advance()
	if last.Before.CurrentIndex != 0 || last.After.CurrentIndex != 1 {
		t.Fatalf("unexpected indices: %d -> %d", last.Before.CurrentIndex, last.After.CurrentIndex)
	}
	if _, ok := last.Before.Answers[0]; !ok {
		t.Fatalf("expected answer in before snapshot")
	}
}

// TestUnsubscribeDuringNotification verifies observers may remove themselves.
func TestUnsubscribeDuringNotification(t *testing.T) {
	session := NewSession(scenarioCatalog())
	calls := 0
	var unsubscribe func()
	unsubscribe = session.Subscribe(ObserverFunc(func(Change) {
		calls++
		unsubscribe()
	}))
	session.RecordTrueFalse(true)
	session.RecordTrueFalse(false)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}
