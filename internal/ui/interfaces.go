package ui

// Prompter defines the interface for user interaction.
type Prompter interface {
	PromptToken(account string) (string, error)
	ConfirmDelete(account string) (bool, error)
}

// DefaultPrompter implements the actual prompting logic.
type DefaultPrompter struct{}

// PromptToken asks for a token without echoing it.
func (p *DefaultPrompter) PromptToken(account string) (string, error) {
	return PromptToken(account)
}

// ConfirmDelete asks before an account is removed.
func (p *DefaultPrompter) ConfirmDelete(account string) (bool, error) {
	return ConfirmDelete(account)
}

// MockPrompter records prompts for testing.
type MockPrompter struct {
	Token      string
	TokenError error

	Confirmed         bool
	ConfirmationError error

	// Call tracking
	PromptTokenCalled   bool
	ConfirmDeleteCalled bool
}

// PromptToken mocks token entry.
func (m *MockPrompter) PromptToken(account string) (string, error) {
	m.PromptTokenCalled = true
	return m.Token, m.TokenError
}

// ConfirmDelete mocks confirmation.
func (m *MockPrompter) ConfirmDelete(account string) (bool, error) {
	m.ConfirmDeleteCalled = true
	return m.Confirmed, m.ConfirmationError
}
