package service

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ryo246912/ghnova/internal/config"
	"github.com/ryo246912/ghnova/internal/ui"
)

func newStore(t *testing.T) *config.Manager {
	t.Helper()
	return config.NewManager(filepath.Join(t.TempDir(), "config.yaml"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// reload reads the saved file back through a fresh manager
func reload(t *testing.T, store *config.Manager) *config.Manager {
	t.Helper()
	m := config.NewManager(store.Path(), nil)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return m
}

func TestAccountService_AddAccount(t *testing.T) {
	tests := []struct {
		name            string
		account         string
		token           string
		baseURL         string
		prompter        *ui.MockPrompter
		expectedToken   string
		expectedBaseURL string
		expectPrompt    bool
		expectError     bool
		errorContains   string
	}{
		{
			name:            "token from flag",
			account:         "work",
			token:           "ghp_flag",
			baseURL:         "https://ghe.example.com/api/v3",
			prompter:        &ui.MockPrompter{},
			expectedToken:   "ghp_flag",
			expectedBaseURL: "https://ghe.example.com/api/v3",
		},
		{
			name:            "token from prompt and default base url",
			account:         "work",
			prompter:        &ui.MockPrompter{Token: "ghp_prompt"},
			expectedToken:   "ghp_prompt",
			expectedBaseURL: "https://api.github.com",
			expectPrompt:    true,
		},
		{
			name:          "prompt error",
			account:       "work",
			prompter:      &ui.MockPrompter{TokenError: errors.New("interrupted")},
			expectPrompt:  true,
			expectError:   true,
			errorContains: "failed to read token",
		},
		{
			name:          "empty name",
			account:       " ",
			token:         "x",
			prompter:      &ui.MockPrompter{},
			expectError:   true,
			errorContains: "account name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			service := NewAccountService(store, tt.prompter)

			err := service.AddAccount(tt.account, tt.token, tt.baseURL, false)

			if tt.prompter.PromptTokenCalled != tt.expectPrompt {
				t.Errorf("prompt called = %v, want %v", tt.prompter.PromptTokenCalled, tt.expectPrompt)
			}
			if tt.expectError {
				if err == nil || !strings.Contains(err.Error(), tt.errorContains) {
					t.Fatalf("Error %v should contain %q", err, tt.errorContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			saved := reload(t, store)
			account, err := saved.Get(tt.account)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if account.Token != tt.expectedToken || account.BaseURL != tt.expectedBaseURL {
				t.Errorf("saved account = %+v", account)
			}
			if saved.DefaultAccount() != tt.account {
				t.Errorf("first account should be default, got %q", saved.DefaultAccount())
			}
		})
	}
}

func TestAccountService_AddDuplicate(t *testing.T) {
	store := newStore(t)
	service := NewAccountService(store, &ui.MockPrompter{})
	if err := service.AddAccount("work", "a", "", false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	err := service.AddAccount("work", "b", "", false)
	if !errors.Is(err, config.ErrAccountExists) {
		t.Fatalf("Expected ErrAccountExists, got %v", err)
	}
}

func TestAccountService_UpdateAccount(t *testing.T) {
	store := newStore(t)
	service := NewAccountService(store, &ui.MockPrompter{})
	_ = service.AddAccount("a", "ta", "", false)
	_ = service.AddAccount("b", "tb", "", false)

	token := "new"
	makeDefault := true
	if err := service.UpdateAccount("b", &token, nil, &makeDefault); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	saved := reload(t, store)
	account, _ := saved.Get("b")
	if account.Token != "new" || saved.DefaultAccount() != "b" {
		t.Errorf("account = %+v, default = %q", account, saved.DefaultAccount())
	}

	if err := service.UpdateAccount("b", nil, nil, nil); err == nil {
		t.Error("Expected error when nothing to update")
	}
	if err := service.UpdateAccount("missing", &token, nil, nil); !errors.Is(err, config.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_DeleteAccount(t *testing.T) {
	tests := []struct {
		name          string
		force         bool
		prompter      *ui.MockPrompter
		target        string
		expectConfirm bool
		expectDeleted bool
		expectError   error
	}{
		{
			name:          "confirmed",
			prompter:      &ui.MockPrompter{Confirmed: true},
			target:        "work",
			expectConfirm: true,
			expectDeleted: true,
		},
		{
			name:          "declined",
			prompter:      &ui.MockPrompter{Confirmed: false},
			target:        "work",
			expectConfirm: true,
			expectError:   ErrDeleteCancelled,
		},
		{
			name:          "forced",
			force:         true,
			prompter:      &ui.MockPrompter{},
			target:        "work",
			expectDeleted: true,
		},
		{
			name:        "missing account",
			force:       true,
			prompter:    &ui.MockPrompter{},
			target:      "other",
			expectError: config.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			service := NewAccountService(store, tt.prompter)
			if err := service.AddAccount("work", "t", "", false); err != nil {
				t.Fatalf("setup: %v", err)
			}

			err := service.DeleteAccount(tt.target, tt.force)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("Expected %v, got %v", tt.expectError, err)
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.prompter.ConfirmDeleteCalled != tt.expectConfirm {
				t.Errorf("confirm called = %v, want %v", tt.prompter.ConfirmDeleteCalled, tt.expectConfirm)
			}

			saved := reload(t, store)
			_, getErr := saved.Get("work")
			if deleted := getErr != nil; deleted != tt.expectDeleted {
				t.Errorf("deleted = %v, want %v", deleted, tt.expectDeleted)
			}
			if tt.expectDeleted && saved.DefaultAccount() != "" {
				t.Errorf("default should be cleared, got %q", saved.DefaultAccount())
			}
		})
	}
}

func TestAccountService_ListAccounts(t *testing.T) {
	store := newStore(t)
	service := NewAccountService(store, &ui.MockPrompter{})
	_ = service.AddAccount("b", "tb", "", false)
	_ = service.AddAccount("a", "ta", "", true)

	accounts, defaultAccount, err := service.ListAccounts()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(accounts) != 2 || accounts[0].Name != "a" || defaultAccount != "a" {
		t.Errorf("accounts = %+v, default = %q", accounts, defaultAccount)
	}
}
