// Package auth resolves the token and base URL a command runs with.
package auth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ryo246912/ghnova/internal/config"
)

var ErrInsufficientAuthParameters = errors.New("insufficient authentication parameters provided")

// Store looks up accounts. An empty name selects the default account.
type Store interface {
	Get(name string) (config.Account, error)
}

// StoreFunc adapts a function to Store.
type StoreFunc func(name string) (config.Account, error)

func (f StoreFunc) Get(name string) (config.Account, error) {
	return f(name)
}

// Params are the credentials given on the command line. Empty means
// not given.
type Params struct {
	AccountName string
	Token       string
	BaseURL     string
}

// Context is the resolved token and base URL.
type Context struct {
	Token   string
	BaseURL string
}

// Resolve picks exactly one source of credentials. A named account wins
// over an explicit token and base URL. With nothing given the default
// account is used.
func Resolve(store Store, params Params, logger *slog.Logger) (Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case params.AccountName != "":
		if params.Token != "" || params.BaseURL != "" {
			logger.Warn("both account name and token/base_url provided; using the account's token and base_url",
				"account", params.AccountName)
		}
		return fromAccount(store, params.AccountName)

	case params.Token == "" && params.BaseURL == "":
		return fromAccount(store, "")

	case params.Token == "" || params.BaseURL == "":
		missing := "token"
		if params.BaseURL == "" {
			missing = "base_url"
		}
		logger.Error("either account name or both token and base_url must be provided for authentication",
			"missing", missing)
		return Context{}, fmt.Errorf("%w: missing %s", ErrInsufficientAuthParameters, missing)

	default:
		return Context{Token: params.Token, BaseURL: params.BaseURL}, nil
	}
}

func fromAccount(store Store, name string) (Context, error) {
	account, err := store.Get(name)
	if err != nil {
		return Context{}, fmt.Errorf("failed to resolve account: %w", err)
	}
	return Context{Token: account.Token, BaseURL: account.BaseURL}, nil
}
