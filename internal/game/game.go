package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixelgrind/viralfail/internal/agents"
	"github.com/pixelgrind/viralfail/internal/rubric"
	"github.com/pixelgrind/viralfail/internal/scores"
)

// DefaultMaxRounds is the round cap when none is configured.
const DefaultMaxRounds = 3

// Presenter is the display/input surface the loop talks to. The console
// implementation lives in internal/ui; tests use a scripted fake.
type Presenter interface {
	// RoundHeader announces the start of a round.
	RoundHeader(round, maxRounds int)

	// Working announces that an agent call is in flight.
	Working(agentName string)

	// AgentReply shows one agent's full reply.
	AgentReply(agentName, reply string)

	// QuickScores shows the extracted scores for one round.
	QuickScores(round int, set scores.ScoreSet)

	// ChooseIterate asks the player whether to run another round.
	// It only gets called when another round is still allowed.
	ChooseIterate(nextRound, maxRounds int) bool

	// Finalize shows the closing scorecard.
	Finalize(session *Session)
}

// Game drives one session through the round loop: creator drafts,
// algorithm scores, audience reacts, player iterates or locks in.
type Game struct {
	creator   agents.Responder
	algorithm agents.Responder
	audience  agents.Responder
	persona   agents.Persona
	presenter Presenter
	maxRounds int
}

// Config holds the game's collaborators.
type Config struct {
	Creator   agents.Responder
	Algorithm agents.Responder
	Audience  agents.Responder
	Persona   agents.Persona
	Presenter Presenter
	MaxRounds int
}

// New creates a game.
func New(cfg Config) *Game {
	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	return &Game{
		creator:   cfg.Creator,
		algorithm: cfg.Algorithm,
		audience:  cfg.Audience,
		persona:   cfg.Persona,
		presenter: cfg.Presenter,
		maxRounds: maxRounds,
	}
}

// Run plays a full session for the chosen topic and platform. Any agent
// failure aborts the session immediately; no scorecard is shown for a
// partial round. The returned session is finalized on success.
func (g *Game) Run(ctx context.Context, topic, platform string) (*Session, error) {
	r, err := rubric.Get(platform)
	if err != nil {
		return nil, err
	}

	session := NewSession(topic, platform, g.persona, g.maxRounds)
	slog.Info("session started",
		"session_id", session.ID,
		"topic", topic,
		"platform", platform,
		"persona", g.persona.Name,
	)

	for session.Round < session.MaxRounds {
		session.State = StateRoundActive
		round := session.Round + 1

		g.presenter.RoundHeader(round, session.MaxRounds)

		record, err := g.playRound(ctx, session, round, r)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		session.Round = round
		session.Latest = record

		g.presenter.QuickScores(round, record.Scores)

		if round >= session.MaxRounds {
			break
		}
		if !g.presenter.ChooseIterate(round+1, session.MaxRounds) {
			break
		}
	}

	session.State = StateFinalized
	slog.Info("session finalized",
		"session_id", session.ID,
		"rounds", session.Round,
		"weighted_total", session.Latest.Scores.WeightedTotal,
	)

	g.presenter.Finalize(session)
	return session, nil
}

// playRound runs one creator -> algorithm -> audience cycle. Each call
// feeds the next, so the three stay strictly sequential.
func (g *Game) playRound(ctx context.Context, session *Session, round int, r rubric.Rubric) (RoundRecord, error) {
	var request string
	if round == 1 {
		request = creationRequest(session.Topic, r)
	} else {
		request = revisionRequest(
			round, session.MaxRounds,
			session.Topic, session.Platform, g.persona.Name,
			session.Latest.Evaluation, session.Latest.Reaction,
		)
	}

	g.presenter.Working("Content Creator")
	content, err := g.creator.Respond(ctx, request)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("creator: %w", err)
	}
	g.presenter.AgentReply("Content Creator", content)

	g.presenter.Working("Algorithm Simulator")
	evaluation, err := g.algorithm.Respond(ctx, evaluationRequest(session.Topic, r, content))
	if err != nil {
		return RoundRecord{}, fmt.Errorf("algorithm: %w", err)
	}
	g.presenter.AgentReply("Algorithm Simulator", evaluation)

	g.presenter.Working(g.persona.Name)
	reaction, err := g.audience.Respond(ctx, reactionRequest(session.Topic, session.Platform, content))
	if err != nil {
		return RoundRecord{}, fmt.Errorf("audience: %w", err)
	}
	g.presenter.AgentReply(fmt.Sprintf("%s (%s)", g.persona.Name, g.persona.Description), reaction)

	return RoundRecord{
		Number:     round,
		Content:    content,
		Evaluation: evaluation,
		Reaction:   reaction,
		Scores:     scores.Extract(evaluation),
	}, nil
}
