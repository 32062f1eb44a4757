package main

// Exit codes for the generate pipeline's failure classes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, render or write failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config file)
	ExitDataError   = 3 // Data error (input file unreadable)
)
