// Package cmd provides command implementations for the APM CLI.
package cmd

// Exit codes used by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates catalog validation failed.
	ExitValidationError = 2

	// ExitNotRunnable indicates the checked add-on cannot run.
	ExitNotRunnable = 3

	// ExitNotFound indicates a catalog, add-on or file was not found.
	ExitNotFound = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotRunnable:
		return "Not Runnable"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
