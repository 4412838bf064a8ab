package handler

import (
	"fmt"
	"strings"

	"kindev/internal/cli/output"
	"kindev/internal/core/domain"
	"kindev/internal/ports"
)

type TokenCommandHandler struct {
	keyring       ports.Keyring
	terminalInput ports.TerminalInput
}

func ProvideTokenCommandHandler(
	keyring ports.Keyring,
	terminalInput ports.TerminalInput,
) TokenCommandHandler {
	return TokenCommandHandler{
		keyring:       keyring,
		terminalInput: terminalInput,
	}
}

func (h *TokenCommandHandler) HandleSet() error {
	var token string
	var err error
	if h.terminalInput.IsTerminal() {
		prompt := fmt.Sprintf("Enter value for %s: ", output.Bold(domain.KeyGithubAccessToken))
		token, err = h.terminalInput.ReadPassword(prompt)
	} else {
		token, err = h.terminalInput.ReadLine()
	}
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := h.keyring.SetKey(domain.KeyGithubAccessToken, token); err != nil {
		return fmt.Errorf("failed to store token in the system keyring: %v", err)
	}
	output.PrintSuccess("GitHub access token stored in the system keyring")
	return nil
}

func (h *TokenCommandHandler) HandleShow() error {
	has, err := h.keyring.HasKey(domain.KeyGithubAccessToken)
	if err != nil {
		return fmt.Errorf("failed to query the system keyring: %v", err)
	}
	if !has {
		output.PrintInfo("No token stored in the system keyring")
		return nil
	}

	token, err := h.keyring.GetKey(domain.KeyGithubAccessToken)
	if err != nil {
		return fmt.Errorf("failed to read token from the system keyring: %v", err)
	}
	output.PrintInfo(fmt.Sprintf("Stored token: %s", maskToken(token)))
	return nil
}

func (h *TokenCommandHandler) HandleDelete() error {
	has, err := h.keyring.HasKey(domain.KeyGithubAccessToken)
	if err != nil {
		return fmt.Errorf("failed to query the system keyring: %v", err)
	}
	if !has {
		output.PrintInfo("No token stored in the system keyring")
		return nil
	}

	if err := h.keyring.DeleteKey(domain.KeyGithubAccessToken); err != nil {
		return fmt.Errorf("failed to remove token from the system keyring: %v", err)
	}
	output.PrintSuccess("GitHub access token removed from the system keyring")
	return nil
}

// maskToken keeps just enough of the token to recognize which one it is.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
