// Package cli implements the ghnova command tree.
package cli

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/spf13/cobra"

	"github.com/ryo246912/ghnova/internal/config"
	"github.com/ryo246912/ghnova/internal/ui"
)

// App carries the dependencies shared by every command.
type App struct {
	Logger   *slog.Logger
	Level    *slog.LevelVar
	Printer  *ui.Printer
	Prompter ui.Prompter
	ErrOut   io.Writer

	// CurrentRepository supplies the default owner and repository for
	// repository-scoped commands.
	CurrentRepository func() (repository.Repository, error)

	// Transport is handed to every client. Nil uses a fresh pool.
	Transport http.RoundTripper

	configPath string
	verbose    bool
	debugHTTP  bool
}

// NewApp returns an App wired to the terminal.
func NewApp(logger *slog.Logger, level *slog.LevelVar) *App {
	return &App{
		Logger:            logger,
		Level:             level,
		Printer:           ui.NewPrinter(),
		Prompter:          &ui.DefaultPrompter{},
		ErrOut:            os.Stderr,
		CurrentRepository: repository.Current,
	}
}

// NewRootCmd builds the ghnova command tree.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ghnova",
		Short:         "Work with GitHub issues, pull requests and users from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.verbose && app.Level != nil {
				app.Level.Set(slog.LevelDebug)
			}
			if app.configPath == "" {
				path, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.configPath = path
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config-path", "", "Path to the configuration file (default: $GHNOVA_CONFIG or the user config directory)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&app.debugHTTP, "debug-http", false, "Dump HTTP requests and responses to stderr")

	cmd.AddCommand(
		newIssueCmd(app),
		newPullRequestCmd(app),
		newUserCmd(app),
		newConfigCmd(app),
	)
	return cmd
}

func (a *App) configManager() *config.Manager {
	return config.NewManager(a.configPath, a.Logger)
}
