package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ryo246912/ghnova/internal/config"
	"github.com/ryo246912/ghnova/internal/models"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// Truncate shortens str to width display cells, ending with "...".
func Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "...")
}

// RenderIssues writes one line per issue.
func RenderIssues(w io.Writer, issues []models.IssueInfo) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found")
		return err
	}
	for _, issue := range issues {
		state := issue.State
		if issue.PullRequest {
			state += " (PR)"
		}
		_, err := fmt.Fprintf(w, "#%s %s %s %s %s %s\n",
			PadRight(fmt.Sprintf("%d", issue.Number), 7),
			PadRight(Truncate(issue.Title, 60), 60),
			PadRight(issue.User, 15),
			PadRight(state, 12),
			PadRight(issue.UpdatedAt, 20),
			strings.Join(issue.Labels, ","),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderPullRequests writes one line per pull request.
func RenderPullRequests(w io.Writer, prs []models.PullRequestInfo) error {
	if len(prs) == 0 {
		_, err := fmt.Fprintln(w, "No pull requests found")
		return err
	}
	for _, pr := range prs {
		state := pr.State
		if pr.Draft {
			state += " (Draft)"
		}
		_, err := fmt.Fprintf(w, "#%s %s %s %s %s\n",
			PadRight(fmt.Sprintf("%d", pr.Number), 7),
			PadRight(Truncate(pr.Title, 75), 75),
			PadRight(pr.User, 15),
			PadRight(state, 10),
			pr.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderAccounts writes the account list with tokens masked. The default
// account is marked with "*".
func RenderAccounts(w io.Writer, accounts []config.Account, defaultAccount string) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts configured")
		return err
	}
	for _, account := range accounts {
		marker := " "
		if account.Name == defaultAccount {
			marker = "*"
		}
		_, err := fmt.Fprintf(w, "%s %s %s %s\n",
			marker,
			PadRight(account.Name, 20),
			PadRight(account.BaseURL, 40),
			MaskToken(account.Token),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// MaskToken keeps the last four characters of token.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", 8) + token[len(token)-4:]
}
