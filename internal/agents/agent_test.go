package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBackend captures the system/user pair it was called with.
type recordingBackend struct {
	system string
	user   string
	reply  string
	err    error
}

func (b *recordingBackend) Complete(_ context.Context, system, user string) (string, error) {
	b.system = system
	b.user = user
	return b.reply, b.err
}

func TestAgentRespond(t *testing.T) {
	backend := &recordingBackend{reply: "drafted post"}
	agent := New("Content_Creator", "you write posts", backend)

	reply, err := agent.Respond(context.Background(), "write about GTA 6")
	require.NoError(t, err)
	assert.Equal(t, "drafted post", reply)
	assert.Equal(t, "you write posts", backend.system)
	assert.Equal(t, "write about GTA 6", backend.user)
}

func TestRoleConstructors(t *testing.T) {
	backend := &recordingBackend{}

	creator := NewCreator(backend)
	assert.Equal(t, "Content_Creator", creator.Name)
	assert.Contains(t, creator.Instructions, "Content Creator")
	assert.Contains(t, creator.Instructions, "HOOK")

	algorithm := NewAlgorithm(backend)
	assert.Equal(t, "Algorithm_Simulator", algorithm.Name)
	assert.Contains(t, algorithm.Instructions, "Reach Score")
	assert.Contains(t, algorithm.Instructions, "WEIGHTED TOTAL")

	audience := NewAudience(backend, Personas[0])
	assert.Equal(t, "CasualChloe", audience.Name)
	assert.Contains(t, audience.Instructions, "CasualChloe")
}

func TestRandomPersona(t *testing.T) {
	names := make(map[string]bool)
	for _, p := range Personas {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Instructions)
		names[p.Name] = true
	}
	assert.Len(t, names, 3)

	// The draw must always come from the fixed set.
	for i := 0; i < 20; i++ {
		p := RandomPersona()
		assert.True(t, names[p.Name])
	}
}
