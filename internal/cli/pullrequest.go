package cli

import (
	"context"

	"github.com/google/go-github/v63/github"
	"github.com/spf13/cobra"

	"github.com/ryo246912/ghnova/internal/models"
	"github.com/ryo246912/ghnova/internal/ui"
	"github.com/ryo246912/ghnova/pkg/client"
	"github.com/ryo246912/ghnova/pkg/pullrequest"
	"github.com/ryo246912/ghnova/pkg/request"
)

func newPullRequestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull-request",
		Aliases: []string{"pr"},
		Short:   "Manage GitHub pull requests",
	}
	cmd.AddCommand(newPullRequestListCmd(app))
	return cmd
}

func newPullRequestListCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		repoF  repoFlags
		condF  conditionalFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pull requests in a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			for _, err := range []error{
				validateChoice(fs, "output", "json", "table"),
				validateChoice(fs, "state", "open", "closed", "all"),
				validateChoice(fs, "sort", "created", "updated", "popularity", "long-running"),
				validateChoice(fs, "direction", "asc", "desc"),
			} {
				if err != nil {
					return err
				}
			}
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}

			opts := pullrequest.ListOptions{
				State:       optFilter(fs, "state"),
				Head:        optFilter(fs, "head"),
				Base:        optFilter(fs, "base"),
				Sort:        optFilter(fs, "sort"),
				Direction:   optFilter(fs, "direction"),
				PerPage:     optInt(fs, "per-page"),
				Page:        optInt(fs, "page"),
				Conditional: condF.conditional(fs),
			}
			fn := func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.PullRequest().List(ctx, owner, repo, opts)
			}
			if output != "table" {
				return app.executeAPICommand(cmd, authF, shapeFlat, fn)
			}
			resp, err := app.call(cmd, authF, fn)
			if err != nil {
				return err
			}
			return app.renderPullRequests(resp)
		},
	}

	fs := cmd.Flags()
	authF.register(fs)
	repoF.register(cmd)
	condF.register(fs)
	fs.String("state", "", "Filter by state: open, closed or all")
	fs.String("head", "", "Filter by head user or organization and branch (user:ref-name)")
	fs.String("base", "", "Filter by base branch name")
	fs.String("sort", "", "Sort by: created, updated, popularity or long-running")
	fs.String("direction", "", "Sort direction: asc or desc")
	fs.Int("per-page", 30, "Number of results per page")
	fs.Int("page", 1, "Page number")
	fs.StringVarP(&output, "output", "o", "json", "Output format: json or table")
	return cmd
}

func (a *App) renderPullRequests(resp *request.Response) error {
	if resp.NotModified() {
		return writeNotModified(a.Printer.Out, resp)
	}
	var prs []*github.PullRequest
	if err := resp.Decode(&prs); err != nil {
		return err
	}
	rows := make([]models.PullRequestInfo, 0, len(prs))
	for _, pr := range prs {
		rows = append(rows, models.NewPullRequestInfo(pr))
	}
	return ui.RenderPullRequests(a.Printer.Out, rows)
}
