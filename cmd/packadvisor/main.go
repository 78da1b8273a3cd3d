package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess       = 0 // Command completed
	ExitCatalogIssues = 1 // Catalog validation found problems
	ExitError         = 2 // Configuration or runtime error
)

// CatalogIssuesError indicates that the command ran successfully but the
// catalog document failed validation.
type CatalogIssuesError struct {
	Message string
}

func (e *CatalogIssuesError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var issuesErr *CatalogIssuesError
		if errors.As(err, &issuesErr) {
			os.Exit(ExitCatalogIssues)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
