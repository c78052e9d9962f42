package quiz

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"quizapp/internal/question"
)

// Snapshot carries the persisted form of a session: its id plus the two
// state fields. It encodes to JSON with tagged answers.
type Snapshot struct {
	SessionID    string
	CurrentIndex int
	Answers      map[int]Answer
}

type snapshotJSON struct {
	SessionID    string             `json:"session_id"`
	CurrentIndex int                `json:"current_index"`
	Answers      map[int]answerJSON `json:"answers"`
}

type answerJSON struct {
	Type  question.Kind   `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Snapshot captures the session for a later Restore.
func (s *Session) Snapshot() Snapshot {
	state := s.state.Clone()
	return Snapshot{SessionID: s.id, CurrentIndex: state.CurrentIndex, Answers: state.Answers}
}

// Restore rebuilds a session from a snapshot taken against the same catalog.
// Snapshots are external input, so problems are reported as errors wrapping
// ErrInvalidSnapshot rather than panics.
func Restore(catalog *question.Catalog, snapshot Snapshot) (*Session, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog is nil", ErrInvalidSnapshot)
	}
	id := snapshot.SessionID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: session id: %v", ErrInvalidSnapshot, err)
	}
	count := catalog.Count()
	if snapshot.CurrentIndex < 0 || snapshot.CurrentIndex > count {
		return nil, fmt.Errorf("%w: current index %d out of range [0, %d]", ErrInvalidSnapshot, snapshot.CurrentIndex, count)
	}
	state := NewState()
	state.CurrentIndex = snapshot.CurrentIndex
	for _, index := range sortedKeys(snapshot.Answers) {
		answer := snapshot.Answers[index]
		if index < 0 || index >= count {
			return nil, fmt.Errorf("%w: answer index %d out of range [0, %d)", ErrInvalidSnapshot, index, count)
		}
		if index > snapshot.CurrentIndex {
			return nil, fmt.Errorf("%w: answer recorded for unvisited question %d", ErrInvalidSnapshot, index)
		}
		if reason := checkAnswer(catalog.At(index), answer); reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, reason)
		}
		state.Answers[index] = answer
	}
	return &Session{id: id, catalog: catalog, state: state}, nil
}

// MarshalJSON encodes the snapshot with type-tagged answers.
func (snap Snapshot) MarshalJSON() ([]byte, error) {
	wire := snapshotJSON{
		SessionID:    snap.SessionID,
		CurrentIndex: snap.CurrentIndex,
		Answers:      make(map[int]answerJSON, len(snap.Answers)),
	}
	for index, answer := range snap.Answers {
		encoded, err := encodeAnswer(answer)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", index, err)
		}
		wire.Answers[index] = encoded
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a snapshot written by MarshalJSON.
func (snap *Snapshot) UnmarshalJSON(data []byte) error {
	var wire snapshotJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	answers := make(map[int]Answer, len(wire.Answers))
	for index, encoded := range wire.Answers {
		answer, err := decodeAnswer(encoded)
		if err != nil {
			return fmt.Errorf("%w: answer %d: %v", ErrInvalidSnapshot, index, err)
		}
		answers[index] = answer
	}
	*snap = Snapshot{SessionID: wire.SessionID, CurrentIndex: wire.CurrentIndex, Answers: answers}
	return nil
}

func encodeAnswer(answer Answer) (answerJSON, error) {
	var value any
	switch typed := answer.(type) {
	case TrueFalseAnswer:
		value = bool(typed)
	case SingleChoiceAnswer:
		value = int(typed)
	case MultiChoiceAnswer:
		indices := typed.Indices()
		if indices == nil {
			indices = []int{}
		}
		value = indices
	case TextAnswer:
		value = string(typed)
	default:
		return answerJSON{}, fmt.Errorf("unsupported answer %T", answer)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return answerJSON{}, err
	}
	return answerJSON{Type: answer.Kind(), Value: raw}, nil
}

func decodeAnswer(encoded answerJSON) (Answer, error) {
	switch encoded.Type {
	case question.KindTrueFalse:
		var value bool
		if err := json.Unmarshal(encoded.Value, &value); err != nil {
			return nil, err
		}
		return TrueFalseAnswer(value), nil
	case question.KindSingleChoice:
		var value int
		if err := json.Unmarshal(encoded.Value, &value); err != nil {
			return nil, err
		}
		return SingleChoiceAnswer(value), nil
	case question.KindMultiChoice:
		var value []int
		if err := json.Unmarshal(encoded.Value, &value); err != nil {
			return nil, err
		}
		return NewMultiChoiceAnswer(value...), nil
	case question.KindTextEntry:
		var value string
		if err := json.Unmarshal(encoded.Value, &value); err != nil {
			return nil, err
		}
		return TextAnswer(value), nil
	default:
		return nil, fmt.Errorf("unknown answer type %q", encoded.Type)
	}
}

func sortedKeys(answers map[int]Answer) []int {
	keys := make([]int, 0, len(answers))
	for index := range answers {
		keys = append(keys, index)
	}
	sort.Ints(keys)
	return keys
}
