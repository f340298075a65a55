package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ryo246912/ghnova/internal/auth"
	"github.com/ryo246912/ghnova/internal/config"
	"github.com/ryo246912/ghnova/internal/models"
	"github.com/ryo246912/ghnova/pkg/client"
	"github.com/ryo246912/ghnova/pkg/request"
)

type outputShape int

const (
	// shapeMetadata prints {"data", "metadata": {...}}.
	shapeMetadata outputShape = iota
	// shapeFlat prints {"data", "status_code", "etag", "last_modified"}.
	shapeFlat
)

// authFlags are the credential flags every API command accepts.
type authFlags struct {
	accountName string
	token       string
	baseURL     string
}

func (f *authFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.accountName, "account-name", "", "Name of the account to use for authentication")
	fs.StringVar(&f.token, "token", "", "Token for authentication")
	fs.StringVar(&f.baseURL, "base-url", "", "Base URL of the GitHub API")
}

// conditionalFlags carry validators from a previous response.
type conditionalFlags struct {
	etag         string
	lastModified string
}

func (f *conditionalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.etag, "etag", "", "ETag from a previous request")
	fs.StringVar(&f.lastModified, "last-modified", "", "Last-Modified value from a previous request")
}

func (f *conditionalFlags) conditional(fs *pflag.FlagSet) request.Conditional {
	return request.Conditional{
		ETag:         optString(fs, "etag"),
		LastModified: optString(fs, "last-modified"),
	}
}

// newClient resolves credentials and builds an unopened client. The
// config file is only read when an account is needed.
func (a *App) newClient(flags authFlags) (*client.GitHub, error) {
	manager := a.configManager()
	loaded := false
	store := auth.StoreFunc(func(name string) (config.Account, error) {
		if !loaded {
			if err := manager.Load(); err != nil {
				return config.Account{}, err
			}
			loaded = true
		}
		return manager.Get(name)
	})

	authCtx, err := auth.Resolve(store, auth.Params{
		AccountName: flags.accountName,
		Token:       flags.token,
		BaseURL:     flags.baseURL,
	}, a.Logger)
	if err != nil {
		return nil, err
	}

	cfg := client.Config{
		Token:     authCtx.Token,
		BaseURL:   authCtx.BaseURL,
		Transport: a.Transport,
		Logger:    a.Logger,
	}
	if a.debugHTTP {
		cfg.HTTPLog = a.ErrOut
	}
	return client.New(cfg), nil
}

// call runs one API request inside an open client session.
func (a *App) call(cmd *cobra.Command, flags authFlags, fn func(context.Context, *client.GitHub) (*request.Response, error)) (*request.Response, error) {
	gh, err := a.newClient(flags)
	if err != nil {
		return nil, err
	}

	var resp *request.Response
	err = gh.With(func(gh *client.GitHub) error {
		var err error
		resp, err = fn(cmd.Context(), gh)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error executing %s: %w", cmd.CommandPath(), err)
	}
	a.Logger.Debug("command completed", "command", cmd.CommandPath(), "status", resp.StatusCode)
	return resp, nil
}

// executeAPICommand runs fn and prints the result as JSON.
func (a *App) executeAPICommand(cmd *cobra.Command, flags authFlags, shape outputShape, fn func(context.Context, *client.GitHub) (*request.Response, error)) error {
	resp, err := a.call(cmd, flags, fn)
	if err != nil {
		return err
	}
	return a.printResponse(resp, shape)
}

func (a *App) printResponse(resp *request.Response, shape outputShape) error {
	if shape == shapeFlat {
		return a.Printer.JSON(models.NewFlatOutput(resp))
	}
	return a.Printer.JSON(models.NewOutput(resp))
}

// resolveRepository falls back to the repository of the current
// directory when neither --owner nor --repository is given.
func (a *App) resolveRepository(owner, repo string) (string, string, error) {
	switch {
	case owner != "" && repo != "":
		return owner, repo, nil
	case owner == "" && repo == "":
		current, err := a.CurrentRepository()
		if err != nil {
			return "", "", fmt.Errorf("failed to get current repository (use --owner and --repository): %w", err)
		}
		return current.Owner, current.Name, nil
	default:
		return "", "", fmt.Errorf("--owner and --repository must be given together")
	}
}

func writeNotModified(w io.Writer, resp *request.Response) error {
	etag := ""
	if resp.ETag != nil {
		etag = *resp.ETag
	}
	_, err := fmt.Fprintf(w, "Not modified (etag %s)\n", etag)
	return err
}
