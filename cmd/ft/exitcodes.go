package main

// Exit codes for the CLI
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitServerNotRunning = 2
	ExitNotConfigured    = 3
	ExitTaskNotFound     = 4
	ExitAuthRequired     = 5
	ExitValidation       = 6
)
