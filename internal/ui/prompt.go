package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptToken shows a masked token prompt.
func PromptToken(account string) (string, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Token for %s", account),
		Mask:  '*',
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("token cannot be empty")
			}
			return nil
		},
	}

	token, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(token), nil
}

// ConfirmDelete asks for user confirmation.
func ConfirmDelete(account string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Delete account %s", account),
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return true, nil
}
