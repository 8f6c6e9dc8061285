package state

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

var ErrEmptyTopic = errors.New("topic must not be empty")

// State is the workflow record threaded through one pipeline run. A run
// owns its State exclusively; stages return deltas that the runner merges,
// so the message log is append-only and Topic never changes after creation.
type State struct {
	Topic        string                `json:"topic"`
	ResearchData string                `json:"research_data,omitempty"`
	Article      string                `json:"article,omitempty"`
	Messages     []llms.MessageContent `json:"messages,omitempty"`
}

// New creates the initial state for a run with only the topic populated.
func New(topic string) State {
	return State{Topic: topic}
}

func (s State) Validate() error {
	if strings.TrimSpace(s.Topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

// Merge folds a stage delta into the state. The receiver's topic always
// wins, data fields are only filled while still absent, and messages are
// appended in order.
func (s State) Merge(other State) State {
	merged := s.Clone()
	if merged.ResearchData == "" {
		merged.ResearchData = other.ResearchData
	}
	if merged.Article == "" {
		merged.Article = other.Article
	}
	merged.Messages = append(merged.Messages, other.Messages...)
	return merged
}

func (s State) Clone() State {
	return State{
		Topic:        s.Topic,
		ResearchData: s.ResearchData,
		Article:      s.Article,
		Messages:     append([]llms.MessageContent{}, s.Messages...),
	}
}

func (s State) Dump() ([]byte, error) {
	return json.Marshal(s)
}

func Load(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	return st, nil
}
