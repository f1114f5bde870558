// ABOUTME: Text generation interface for narrative summaries around computed nutrition facts
// ABOUTME: Generated text is decorative; all numbers come from the nutrition engine
package llm

import "context"

// Generator produces free-form narrative text. There is no contract on
// content, only on availability and failure; callers must never derive
// nutrition numbers from generated text.
type Generator interface {
	// Available reports whether the generator can serve requests
	Available() bool
	// GenerateText returns narrative text for the given prompt
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Stub is a deterministic offline Generator. It echoes a fixed preamble
// so callers and tests get stable output without network access.
type Stub struct{}

// NewStub creates a stub generator
func NewStub() *Stub {
	return &Stub{}
}

// Available always reports true for the stub
func (s *Stub) Available() bool {
	return true
}

// GenerateText returns a fixed acknowledgement independent of the prompt
func (s *Stub) GenerateText(_ context.Context, _ string) (string, error) {
	return "Logged. Keep up the consistent tracking!", nil
}
