package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fieldtask/fieldtask/internal/config"
	"github.com/fieldtask/fieldtask/internal/session"
	"github.com/fieldtask/fieldtask/pkg/fieldtask"
)

// getClient creates a client from the resolved config
func getClient() (*fieldtask.Client, error) {
	cfg, err := config.Resolve(serverURL)
	if err != nil {
		return nil, err
	}

	return fieldtask.NewClient(
		fieldtask.WithBaseURL(cfg.ServerURL),
		fieldtask.WithTimeout(cfg.Timeout),
	)
}

// getToken loads the bearer token from the stored session
func getToken() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	sess, err := session.Load(homeDir)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", errNotLoggedIn
	}
	return sess.Token, nil
}

var errNotLoggedIn = errors.New("not logged in (run 'ft login')")

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case fieldtask.IsServerNotRunning(err):
		return ExitServerNotRunning
	case errors.Is(err, config.ErrNoServerURL):
		return ExitNotConfigured
	case fieldtask.IsNotFound(err):
		return ExitTaskNotFound
	case fieldtask.IsUnauthorized(err), errors.Is(err, errNotLoggedIn):
		return ExitAuthRequired
	case fieldtask.IsValidation(err):
		return ExitValidation
	}

	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	// A rejected token means the stored session is stale. Drop it so the
	// next command starts from a clean signed-out state.
	if fieldtask.IsUnauthorized(err) {
		if homeDir, homeErr := os.UserHomeDir(); homeErr == nil {
			session.Clear(homeDir)
		}
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
