package agents

import "context"

// Responder turns a text request into a text reply. The game loop depends
// on this rather than on the HTTP client so it can run against fakes.
type Responder interface {
	Respond(ctx context.Context, request string) (string, error)
}

// Completer is the backend capability an Agent needs: one system+user
// exchange in, one reply out. *Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Agent binds a fixed instruction set to an inference backend. The three
// game roles (creator, algorithm simulator, audience persona) differ only
// in their instructions.
type Agent struct {
	Name         string
	Instructions string

	backend Completer
}

// New creates an agent with the given role instructions.
func New(name, instructions string, backend Completer) *Agent {
	return &Agent{
		Name:         name,
		Instructions: instructions,
		backend:      backend,
	}
}

// NewCreator returns the content creator agent.
func NewCreator(backend Completer) *Agent {
	return New("Content_Creator", creatorInstructions, backend)
}

// NewAlgorithm returns the algorithm simulator agent.
func NewAlgorithm(backend Completer) *Agent {
	return New("Algorithm_Simulator", algorithmInstructions, backend)
}

// NewAudience returns the audience agent speaking as the given persona.
func NewAudience(backend Completer, p Persona) *Agent {
	return New(p.Name, p.Instructions, backend)
}

// Respond sends one request to the backend under this agent's
// instructions and returns the reply text.
func (a *Agent) Respond(ctx context.Context, request string) (string, error) {
	return a.backend.Complete(ctx, a.Instructions, request)
}
