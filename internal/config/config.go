// Package config stores GitHub accounts in a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "GHNOVA_CONFIG"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrNoDefaultAccount = errors.New("no default account available for authentication")
	ErrAccountExists    = errors.New("account already exists")
)

// Account is a named token and API base URL.
type Account struct {
	Name    string `yaml:"name"`
	Token   string `yaml:"token"`
	BaseURL string `yaml:"base_url"`
}

// File is the on-disk layout.
type File struct {
	Accounts       map[string]Account `yaml:"accounts"`
	DefaultAccount string             `yaml:"default_account,omitempty"`
}

// Manager loads, edits and saves the account file at one path.
type Manager struct {
	path   string
	logger *slog.Logger
	file   File
}

// DefaultPath returns GHNOVA_CONFIG if set, else config.yaml under the
// user config directory.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "ghnova", "config.yaml"), nil
}

// NewManager returns a Manager for path with an empty account set. Call
// Load to read the file.
func NewManager(path string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		path:   path,
		logger: logger,
		file:   File{Accounts: map[string]Account{}},
	}
}

// Path returns the file the manager reads and writes.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the file. A missing file yields an empty account set.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		m.file = File{Accounts: map[string]Account{}}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", m.path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("invalid configuration format in %s: %w", m.path, err)
	}
	if file.Accounts == nil {
		file.Accounts = map[string]Account{}
	}
	for name, account := range file.Accounts {
		if account.Name == "" {
			account.Name = name
			file.Accounts[name] = account
		}
	}
	m.file = file
	return nil
}

// Save writes the file, creating its directory if needed.
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(&m.file)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", m.path, err)
	}
	return nil
}

// Get returns the named account, or the default account when name is
// empty.
func (m *Manager) Get(name string) (Account, error) {
	if name == "" {
		if m.file.DefaultAccount == "" {
			return Account{}, ErrNoDefaultAccount
		}
		name = m.file.DefaultAccount
	}
	account, ok := m.file.Accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	return account, nil
}

// DefaultAccount returns the default account name, or "".
func (m *Manager) DefaultAccount() string {
	return m.file.DefaultAccount
}

// Accounts returns every account sorted by name.
func (m *Manager) Accounts() []Account {
	accounts := make([]Account, 0, len(m.file.Accounts))
	for _, account := range m.file.Accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts
}

// Add inserts a new account. The first account added becomes the default.
func (m *Manager) Add(account Account, setDefault bool) error {
	if _, ok := m.file.Accounts[account.Name]; ok {
		return fmt.Errorf("%w: %q", ErrAccountExists, account.Name)
	}
	m.file.Accounts[account.Name] = account
	if setDefault || len(m.file.Accounts) == 1 {
		m.file.DefaultAccount = account.Name
	}
	return nil
}

// Update changes the non-nil fields of an account. setDefault false only
// clears the default pointer when it names this account.
func (m *Manager) Update(name string, token, baseURL *string, setDefault *bool) error {
	account, ok := m.file.Accounts[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	if token != nil {
		account.Token = *token
	}
	if baseURL != nil {
		account.BaseURL = *baseURL
	}
	m.file.Accounts[name] = account

	if setDefault == nil {
		return nil
	}
	switch {
	case *setDefault:
		m.file.DefaultAccount = name
	case m.file.DefaultAccount == name:
		m.file.DefaultAccount = ""
	default:
		m.logger.Warn("account is not the default account; default unchanged", "account", name)
	}
	return nil
}

// Delete removes an account, clearing the default if it pointed there.
func (m *Manager) Delete(name string) error {
	if _, ok := m.file.Accounts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, name)
	}
	delete(m.file.Accounts, name)
	if m.file.DefaultAccount == name {
		m.file.DefaultAccount = ""
	}
	return nil
}
