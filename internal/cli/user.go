package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ryo246912/ghnova/pkg/client"
	"github.com/ryo246912/ghnova/pkg/request"
	"github.com/ryo246912/ghnova/pkg/user"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage GitHub users",
	}
	cmd.AddCommand(
		newUserContextualInformationCmd(app),
		newUserGetCmd(app),
		newUserUpdateCmd(app),
	)
	return cmd
}

func newUserContextualInformationCmd(app *App) *cobra.Command {
	var (
		authF    authFlags
		username string
	)
	cmd := &cobra.Command{
		Use:   "ctx-info",
		Short: "Get contextual information (hovercard) for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errors.New("username must be provided to retrieve contextual information")
			}
			fs := cmd.Flags()
			if err := validateChoice(fs, "subject-type", "organization", "repository", "issue", "pull_request"); err != nil {
				return err
			}
			opts := user.ContextualInformationOptions{
				SubjectType: optFilter(fs, "subject-type"),
				SubjectID:   optFilter(fs, "subject-id"),
			}
			return app.executeAPICommand(cmd, authF, shapeMetadata, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.User().ContextualInformation(ctx, username, opts)
			})
		},
	}

	authF.register(cmd.Flags())
	cmd.Flags().StringVar(&username, "username", "", "The username of the user")
	cmd.Flags().String("subject-type", "", "Subject type: organization, repository, issue or pull_request")
	cmd.Flags().String("subject-id", "", "ID of the subject, required with --subject-type")
	return cmd
}

func newUserGetCmd(app *App) *cobra.Command {
	var (
		authF authFlags
		condF conditionalFlags
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a user, or the authenticated user when no identifier is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			opts := user.GetOptions{
				Username:    optFilter(fs, "username"),
				AccountID:   optInt64(fs, "account-id"),
				Conditional: condF.conditional(fs),
			}
			if _, err := user.GetSpec(opts); err != nil {
				return err
			}
			return app.executeAPICommand(cmd, authF, shapeFlat, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.User().Get(ctx, opts)
			})
		},
	}

	authF.register(cmd.Flags())
	condF.register(cmd.Flags())
	cmd.Flags().String("username", "", "The username of the user")
	cmd.Flags().Int64("account-id", 0, "The numeric account ID of the user")
	return cmd
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var authF authFlags
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the authenticated user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			opts := user.UpdateOptions{
				Name:            optString(fs, "name"),
				Email:           optString(fs, "email"),
				Blog:            optString(fs, "blog"),
				TwitterUsername: optString(fs, "twitter-username"),
				Company:         optString(fs, "company"),
				Location:        optString(fs, "location"),
				Hireable:        optBool(fs, "hireable"),
				Bio:             optString(fs, "bio"),
			}
			return app.executeAPICommand(cmd, authF, shapeFlat, func(ctx context.Context, gh *client.GitHub) (*request.Response, error) {
				return gh.User().Update(ctx, opts)
			})
		},
	}

	fs := cmd.Flags()
	authF.register(fs)
	fs.String("name", "", "The new name of the user")
	fs.String("email", "", "The publicly visible email address")
	fs.String("blog", "", "The new blog URL")
	fs.String("twitter-username", "", "The new Twitter username")
	fs.String("company", "", "The new company")
	fs.String("location", "", "The new location")
	fs.Bool("hireable", false, "Whether the user is available for hire")
	fs.String("bio", "", "The new short biography")
	return cmd
}
