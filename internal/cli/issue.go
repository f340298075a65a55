package cli

import (
	"context"
	"errors"

	"github.com/google/go-github/v63/github"
	"github.com/spf13/cobra"

	"github.com/ryo246912/ghnova/internal/models"
	"github.com/ryo246912/ghnova/internal/ui"
	"github.com/ryo246912/ghnova/pkg/client"
	"github.com/ryo246912/ghnova/pkg/issue"
	"github.com/ryo246912/ghnova/pkg/request"
)

func newIssueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage GitHub issues",
	}
	cmd.AddCommand(
		newIssueCreateCmd(app),
		newIssueGetCmd(app),
		newIssueListCmd(app),
		newIssueLockCmd(app),
		newIssueUnlockCmd(app),
		newIssueUpdateCmd(app),
	)
	return cmd
}

// repoFlags identify one repository and default to the current one.
type repoFlags struct {
	owner      string
	repository string
}

func (f *repoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.owner, "owner", "", "The owner of the repository (default: current repository)")
	cmd.Flags().StringVar(&f.repository, "repository", "", "The name of the repository (default: current repository)")
}

func newIssueCreateCmd(app *App) *cobra.Command {
	var (
		authF authFlags
		repoF repoFlags
		title string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			opts := issue.CreateOptions{
				Title:     title,
				Body:      optString(fs, "body"),
				Assignee:  optString(fs, "assignee"),
				Milestone: optString(fs, "milestone"),
				Labels:    optStringList(fs, "labels"),
				Assignees: optStringList(fs, "assignees"),
				IssueType: optString(fs, "issue-type"),
			}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().Create(ctx, owner, repo, opts)
			})
		},
	}

	authF.register(cmd.Flags())
	repoF.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "The title of the issue")
	cmd.Flags().String("body", "", "The body of the issue")
	cmd.Flags().String("assignee", "", "Login of the user to assign")
	cmd.Flags().String("milestone", "", "The milestone number or title")
	cmd.Flags().StringSlice("labels", nil, "Labels to associate with the issue")
	cmd.Flags().StringSlice("assignees", nil, "Logins of the users to assign")
	cmd.Flags().String("issue-type", "", "The issue type")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newIssueGetCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		repoF  repoFlags
		condF  conditionalFlags
		number int
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateIssueNumber(number); err != nil {
				return err
			}
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}
			opts := issue.GetOptions{Conditional: condF.conditional(cmd.Flags())}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().Get(ctx, owner, repo, number, opts)
			})
		},
	}

	authF.register(cmd.Flags())
	repoF.register(cmd)
	condF.register(cmd.Flags())
	cmd.Flags().IntVar(&number, "issue-number", 0, "The number of the issue")
	_ = cmd.MarkFlagRequired("issue-number")
	return cmd
}

func newIssueListCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		condF  conditionalFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues for the authenticated user, an organization or a repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if err := validateChoice(fs, "output", "json", "table"); err != nil {
				return err
			}
			checks := []error{
				validateChoice(fs, "filter-by", "assigned", "created", "mentioned", "subscribed", "repos", "all"),
				validateChoice(fs, "state", "open", "closed", "all"),
				validateChoice(fs, "sort", "created", "updated", "comments"),
				validateChoice(fs, "direction", "asc", "desc"),
			}
			for _, err := range checks {
				if err != nil {
					return err
				}
			}
			since, err := optTime(fs, "since")
			if err != nil {
				return err
			}

			perPage, _ := fs.GetInt("per-page")
			page, _ := fs.GetInt("page")
			opts := issue.ListOptions{
				Owner:        optFilter(fs, "owner"),
				Organization: optFilter(fs, "organization"),
				Repository:   optFilter(fs, "repository"),
				FilterBy:     optFilter(fs, "filter-by"),
				State:        optFilter(fs, "state"),
				Labels:       optStringSlice(fs, "labels"),
				Sort:         optFilter(fs, "sort"),
				Direction:    optFilter(fs, "direction"),
				Since:        since,
				Collab:       optBool(fs, "collab"),
				Orgs:         optBool(fs, "orgs"),
				Owned:        optBool(fs, "owned"),
				Pulls:        optBool(fs, "pulls"),
				IssueType:    optFilter(fs, "issue-type"),
				Milestone:    optFilter(fs, "milestone"),
				Assignee:     optFilter(fs, "assignee"),
				Creator:      optFilter(fs, "creator"),
				Mentioned:    optFilter(fs, "mentioned"),
				PerPage:      &perPage,
				Page:         &page,
				Conditional:  condF.conditional(fs),
			}
			_, scope, err := issue.ListSpec(opts)
			if err != nil {
				return err
			}
			app.Logger.Debug("listing issues", "scope", scope)

			fn := func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().List(ctx, opts)
			}
			if output != "table" {
				return app.executeAPICommand(cmd, authF, shapeMetadata, fn)
			}
			resp, err := app.call(cmd, authF, fn)
			if err != nil {
				return err
			}
			return app.renderIssues(resp)
		},
	}

	fs := cmd.Flags()
	authF.register(fs)
	condF.register(fs)
	fs.String("owner", "", "The owner of the repository")
	fs.String("organization", "", "The organization name")
	fs.String("repository", "", "The name of the repository")
	fs.String("filter-by", "", "Filter issues by: assigned, created, mentioned, subscribed, repos or all")
	fs.String("state", "", "Filter by state: open, closed or all")
	fs.StringSlice("labels", nil, "Filter by labels")
	fs.String("sort", "", "Sort by: created, updated or comments")
	fs.String("direction", "", "Sort direction: asc or desc")
	fs.String("since", "", "Only issues updated at or after this time (RFC3339)")
	fs.Bool("collab", false, "Include issues the user is a collaborator on")
	fs.Bool("orgs", false, "Include issues from organizations the user is a member of")
	fs.Bool("owned", false, "Include issues owned by the authenticated user")
	fs.Bool("pulls", false, "Include pull requests in the results")
	fs.String("issue-type", "", "Filter by issue type")
	fs.String("milestone", "", "Filter by milestone")
	fs.String("assignee", "", "Filter by assignee")
	fs.String("creator", "", "Filter by creator")
	fs.String("mentioned", "", "Filter by mentioned user")
	fs.Int("per-page", 30, "Number of results per page")
	fs.Int("page", 1, "Page number")
	fs.StringVarP(&output, "output", "o", "json", "Output format: json or table")
	return cmd
}

func (a *App) renderIssues(resp *request.Response) error {
	if resp.NotModified() {
		return writeNotModified(a.Printer.Out, resp)
	}
	var issues []*github.Issue
	if err := resp.Decode(&issues); err != nil {
		return err
	}
	rows := make([]models.IssueInfo, 0, len(issues))
	for _, i := range issues {
		rows = append(rows, models.NewIssueInfo(i))
	}
	return ui.RenderIssues(a.Printer.Out, rows)
}

func newIssueLockCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		repoF  repoFlags
		number int
	)
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock an issue's conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if err := validateChoice(fs, "lock-reason", "off-topic", "too heated", "resolved", "spam"); err != nil {
				return err
			}
			if err := validateIssueNumber(number); err != nil {
				return err
			}
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}
			opts := issue.LockOptions{LockReason: optString(fs, "lock-reason")}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().Lock(ctx, owner, repo, number, opts)
			})
		},
	}

	authF.register(cmd.Flags())
	repoF.register(cmd)
	cmd.Flags().IntVar(&number, "issue-number", 0, "The number of the issue")
	cmd.Flags().String("lock-reason", "", "Reason: off-topic, too heated, resolved or spam")
	_ = cmd.MarkFlagRequired("issue-number")
	return cmd
}

func newIssueUnlockCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		repoF  repoFlags
		number int
	)
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock an issue's conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateIssueNumber(number); err != nil {
				return err
			}
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().Unlock(ctx, owner, repo, number, issue.UnlockOptions{})
			})
		},
	}

	authF.register(cmd.Flags())
	repoF.register(cmd)
	cmd.Flags().IntVar(&number, "issue-number", 0, "The number of the issue")
	_ = cmd.MarkFlagRequired("issue-number")
	return cmd
}

func newIssueUpdateCmd(app *App) *cobra.Command {
	var (
		authF  authFlags
		repoF  repoFlags
		number int
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if err := validateChoice(fs, "state", "open", "closed"); err != nil {
				return err
			}
			if err := validateChoice(fs, "state-reason", "completed", "not_planned", "reopened"); err != nil {
				return err
			}
			if err := validateIssueNumber(number); err != nil {
				return err
			}
			owner, repo, err := app.resolveRepository(repoF.owner, repoF.repository)
			if err != nil {
				return err
			}
			opts := issue.UpdateOptions{
				Title:       optString(fs, "title"),
				Body:        optString(fs, "body"),
				Assignee:    optString(fs, "assignee"),
				State:       optString(fs, "state"),
				StateReason: optString(fs, "state-reason"),
				Milestone:   optString(fs, "milestone"),
				Labels:      optStringList(fs, "labels"),
				Assignees:   optStringList(fs, "assignees"),
				IssueType:   optString(fs, "issue-type"),
			}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.Issue().Update(ctx, owner, repo, number, opts)
			})
		},
	}

	fs := cmd.Flags()
	authF.register(fs)
	repoF.register(cmd)
	fs.IntVar(&number, "issue-number", 0, "The number of the issue")
	fs.String("title", "", "The new title")
	fs.String("body", "", "The new body")
	fs.String("assignee", "", "Login of the user to assign")
	fs.String("state", "", "The new state: open or closed")
	fs.String("state-reason", "", "Reason for the state change: completed, not_planned or reopened")
	fs.String("milestone", "", "The milestone number or title")
	fs.StringSlice("labels", nil, "Labels to set on the issue")
	fs.StringSlice("assignees", nil, "Logins of the users to assign")
	fs.String("issue-type", "", "The issue type")
	_ = cmd.MarkFlagRequired("issue-number")
	return cmd
}

func validateIssueNumber(number int) error {
	if number <= 0 {
		return errors.New("issue number must be positive")
	}
	return nil
}
