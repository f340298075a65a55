package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ryo246912/ghnova/internal/config"
	"github.com/ryo246912/ghnova/internal/ui"
	"github.com/ryo246912/ghnova/pkg/client"
)

var ErrDeleteCancelled = errors.New("account deletion cancelled")

// AccountStore is the persistence the service edits.
type AccountStore interface {
	Load() error
	Save() error
	Get(name string) (config.Account, error)
	Add(account config.Account, setDefault bool) error
	Update(name string, token, baseURL *string, setDefault *bool) error
	Delete(name string) error
	Accounts() []config.Account
	DefaultAccount() string
}

// AccountService contains the account management workflow.
type AccountService struct {
	store    AccountStore
	prompter ui.Prompter
}

// NewAccountService creates a new service instance.
func NewAccountService(store AccountStore, prompter ui.Prompter) *AccountService {
	return &AccountService{
		store:    store,
		prompter: prompter,
	}
}

// AddAccount stores a new account, prompting for the token when empty.
func (s *AccountService) AddAccount(name, token, baseURL string, setDefault bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.store.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if token == "" {
		prompted, err := s.prompter.PromptToken(name)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = prompted
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if baseURL == "" {
		baseURL = client.DefaultBaseURL
	}

	account := config.Account{Name: name, Token: token, BaseURL: baseURL}
	if err := s.store.Add(account, setDefault); err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// UpdateAccount changes the given fields of an existing account.
func (s *AccountService) UpdateAccount(name string, token, baseURL *string, setDefault *bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	if token == nil && baseURL == nil && setDefault == nil {
		return fmt.Errorf("nothing to update for account %q", name)
	}
	if err := s.store.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := s.store.Update(name, token, baseURL, setDefault); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// DeleteAccount removes an account after confirmation unless force is set.
func (s *AccountService) DeleteAccount(name string, force bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.store.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if _, err := s.store.Get(name); err != nil {
		return err
	}

	if !force {
		confirmed, err := s.prompter.ConfirmDelete(name)
		if err != nil {
			return fmt.Errorf("failed to confirm deletion: %w", err)
		}
		if !confirmed {
			return ErrDeleteCancelled
		}
	}

	if err := s.store.Delete(name); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// ListAccounts returns every account and the default account name.
func (s *AccountService) ListAccounts() ([]config.Account, string, error) {
	if err := s.store.Load(); err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return s.store.Accounts(), s.store.DefaultAccount(), nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	return nil
}
