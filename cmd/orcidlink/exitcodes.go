package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing credentials, bad base URL)
	ExitNotFound    = 3 // User not found in MaIS
)
