package game

import (
	"github.com/google/uuid"

	"github.com/pixelgrind/viralfail/internal/agents"
	"github.com/pixelgrind/viralfail/internal/scores"
)

// State is the session lifecycle state.
type State int

const (
	StateSetup State = iota
	StateRoundActive
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRoundActive:
		return "round_active"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// RoundRecord holds the artifacts of one creator/algorithm/audience cycle.
// Only the latest round is kept; each round supersedes the previous one.
type RoundRecord struct {
	Number     int
	Content    string
	Evaluation string
	Reaction   string
	Scores     scores.ScoreSet
}

// Session is the state of one play-through. Topic, platform, and persona
// are fixed at creation; the round counter and latest record advance once
// per round. Nothing is persisted across runs.
type Session struct {
	ID        uuid.UUID
	Topic     string
	Platform  string
	Persona   agents.Persona
	MaxRounds int

	State  State
	Round  int
	Latest RoundRecord
}

// NewSession creates a session in the setup state.
func NewSession(topic, platform string, persona agents.Persona, maxRounds int) *Session {
	return &Session{
		ID:        uuid.New(),
		Topic:     topic,
		Platform:  platform,
		Persona:   persona,
		MaxRounds: maxRounds,
		State:     StateSetup,
	}
}

// Scores returns the latest round's score set, or all defaults if no
// round has completed.
func (s *Session) Scores() scores.ScoreSet {
	if s.Round == 0 {
		return scores.DefaultScores()
	}
	return s.Latest.Scores
}
