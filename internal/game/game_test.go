package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelgrind/viralfail/internal/agents"
	"github.com/pixelgrind/viralfail/internal/scores"
)

var testPersona = agents.Persona{
	Name:         "CasualChloe",
	Description:  "Casual mobile gamer",
	Instructions: "react casually",
}

// scriptedResponder replies from a fixed script and records every request.
type scriptedResponder struct {
	replies  []string
	requests []string
	err      error
}

func (r *scriptedResponder) Respond(_ context.Context, request string) (string, error) {
	r.requests = append(r.requests, request)
	if r.err != nil {
		return "", r.err
	}
	idx := len(r.requests) - 1
	if idx >= len(r.replies) {
		idx = len(r.replies) - 1
	}
	return r.replies[idx], nil
}

// fakePresenter records loop events and answers iterate prompts from a
// scripted choice list.
type fakePresenter struct {
	iterateChoices []bool
	iterateAsked   int
	headers        []int
	quickScores    []scores.ScoreSet
	finalized      *Session
}

func (p *fakePresenter) RoundHeader(round, _ int)  { p.headers = append(p.headers, round) }
func (p *fakePresenter) Working(string)            {}
func (p *fakePresenter) AgentReply(string, string) {}

func (p *fakePresenter) QuickScores(_ int, set scores.ScoreSet) {
	p.quickScores = append(p.quickScores, set)
}

func (p *fakePresenter) ChooseIterate(_, _ int) bool {
	choice := p.iterateChoices[p.iterateAsked]
	p.iterateAsked++
	return choice
}

func (p *fakePresenter) Finalize(s *Session) { p.finalized = s }

func evaluationText(reach, engagement, virality, total int) string {
	return fmt.Sprintf(
		"**Reach Score:** %d\n**Engagement Score:** %d\n**Virality Score:** %d\n**WEIGHTED TOTAL:** %d/100",
		reach, engagement, virality, total,
	)
}

func newTestGame(creator, algorithm, audience *scriptedResponder, presenter *fakePresenter) *Game {
	return New(Config{
		Creator:   creator,
		Algorithm: algorithm,
		Audience:  audience,
		Persona:   testPersona,
		Presenter: presenter,
		MaxRounds: 3,
	})
}

func TestRun(t *testing.T) {
	t.Run("iterating to the cap runs exactly three cycles", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"draft 1", "draft 2", "draft 3"}}
		algorithm := &scriptedResponder{replies: []string{
			evaluationText(40, 40, 40, 40),
			evaluationText(60, 60, 60, 60),
			evaluationText(80, 82, 85, 81),
		}}
		audience := &scriptedResponder{replies: []string{"meh", "better", "sharing this"}}
		presenter := &fakePresenter{iterateChoices: []bool{true, true}}

		session, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "GTA 6 leak", "TikTok")
		require.NoError(t, err)

		assert.Equal(t, StateFinalized, session.State)
		assert.Equal(t, 3, session.Round)
		assert.Len(t, creator.requests, 3)
		assert.Len(t, algorithm.requests, 3)
		assert.Len(t, audience.requests, 3)
		assert.Equal(t, []int{1, 2, 3}, presenter.headers)

		// No iterate prompt after the final round; it is forced.
		assert.Equal(t, 2, presenter.iterateAsked)

		// Final scores come from round 3's evaluation.
		assert.Equal(t, 81, session.Scores().WeightedTotal)
		assert.Same(t, session, presenter.finalized)
	})

	t.Run("locking in on round one runs a single cycle", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"draft 1"}}
		algorithm := &scriptedResponder{replies: []string{evaluationText(55, 65, 45, 57)}}
		audience := &scriptedResponder{replies: []string{"ok I guess"}}
		presenter := &fakePresenter{iterateChoices: []bool{false}}

		session, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "Silksong", "YouTube")
		require.NoError(t, err)

		assert.Equal(t, StateFinalized, session.State)
		assert.Equal(t, 1, session.Round)
		assert.Len(t, creator.requests, 1)
		assert.Equal(t, 1, presenter.iterateAsked)
		assert.Equal(t, scores.ScoreSet{Reach: 55, Engagement: 65, Virality: 45, WeightedTotal: 57}, session.Scores())
	})

	t.Run("revision request embeds prior feedback verbatim", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"draft 1", "draft 2"}}
		algorithm := &scriptedResponder{replies: []string{
			evaluationText(40, 40, 40, 40) + "\nhook needs a pattern interrupt",
			evaluationText(70, 70, 70, 70),
		}}
		audience := &scriptedResponder{replies: []string{"lowkey boring ngl", "ok this slaps"}}
		presenter := &fakePresenter{iterateChoices: []bool{true, false}}

		_, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "Valorant agent reveal", "Twitter/X")
		require.NoError(t, err)

		require.Len(t, creator.requests, 2)
		first, second := creator.requests[0], creator.requests[1]

		assert.Contains(t, first, "Create a Twitter/X post")
		assert.Contains(t, first, "Valorant agent reveal")
		assert.Contains(t, first, "Format hint:")

		assert.Contains(t, second, "REVISION REQUEST (Round 2/3)")
		assert.Contains(t, second, "hook needs a pattern interrupt")
		assert.Contains(t, second, "lowkey boring ngl")
		assert.Contains(t, second, "AUDIENCE FEEDBACK (CasualChloe)")
	})

	t.Run("evaluation request carries the full rubric and content", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"my hot take"}}
		algorithm := &scriptedResponder{replies: []string{evaluationText(50, 50, 50, 50)}}
		audience := &scriptedResponder{replies: []string{"reaction"}}
		presenter := &fakePresenter{iterateChoices: []bool{false}}

		_, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "PS6 reveal", "Instagram")
		require.NoError(t, err)

		require.Len(t, algorithm.requests, 1)
		assert.Contains(t, algorithm.requests[0], "SCORING RUBRIC")
		assert.Contains(t, algorithm.requests[0], "visual_appeal (30%)")
		assert.Contains(t, algorithm.requests[0], "my hot take")

		require.Len(t, audience.requests, 1)
		assert.Contains(t, audience.requests[0], "your Instagram feed")
		assert.Contains(t, audience.requests[0], "my hot take")
	})

	t.Run("creator failure aborts the session", func(t *testing.T) {
		backendErr := &agents.BackendError{Err: errors.New("timeout")}
		creator := &scriptedResponder{err: backendErr}
		presenter := &fakePresenter{}

		_, err := newTestGame(creator, &scriptedResponder{}, &scriptedResponder{}, presenter).Run(
			context.Background(), "topic", "TikTok")
		require.Error(t, err)

		var be *agents.BackendError
		assert.True(t, errors.As(err, &be))
		assert.Nil(t, presenter.finalized, "no scorecard after an aborted session")
	})

	t.Run("algorithm failure aborts before the audience call", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"draft"}}
		algorithm := &scriptedResponder{err: errors.New("boom")}
		audience := &scriptedResponder{replies: []string{"never used"}}
		presenter := &fakePresenter{}

		_, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "topic", "TikTok")
		require.Error(t, err)
		assert.Empty(t, audience.requests)
		assert.Empty(t, presenter.quickScores)
	})

	t.Run("unknown platform fails before any agent call", func(t *testing.T) {
		creator := &scriptedResponder{}
		_, err := newTestGame(creator, &scriptedResponder{}, &scriptedResponder{}, &fakePresenter{}).Run(
			context.Background(), "topic", "MySpace")
		require.Error(t, err)
		assert.Empty(t, creator.requests)
	})

	t.Run("unparseable evaluation falls back to default scores", func(t *testing.T) {
		creator := &scriptedResponder{replies: []string{"draft"}}
		algorithm := &scriptedResponder{replies: []string{"vibes only, no numbers"}}
		audience := &scriptedResponder{replies: []string{"sure"}}
		presenter := &fakePresenter{iterateChoices: []bool{false}}

		session, err := newTestGame(creator, algorithm, audience, presenter).Run(
			context.Background(), "topic", "TikTok")
		require.NoError(t, err)
		assert.Equal(t, scores.DefaultScores(), session.Scores())
	})
}

func TestNewDefaultsMaxRounds(t *testing.T) {
	g := New(Config{Persona: testPersona, Presenter: &fakePresenter{}})
	assert.Equal(t, DefaultMaxRounds, g.maxRounds)
}

func TestSessionScoresBeforeFirstRound(t *testing.T) {
	s := NewSession("topic", "TikTok", testPersona, 3)
	assert.Equal(t, StateSetup, s.State)
	assert.Equal(t, scores.DefaultScores(), s.Scores())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", s.ID.String())
}
