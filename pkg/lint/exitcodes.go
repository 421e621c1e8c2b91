package lint

import "fmt"

// Exit codes returned by the cfglint CLI. External tools can check these
// symbolically rather than using magic numbers.
const (
	// ExitClean indicates a run with no errors and no warnings.
	ExitClean = 0

	// ExitNoPlugins indicates that no lint plugins were loaded at all.
	ExitNoPlugins = 1

	// ExitErrors indicates at least one error was recorded.
	ExitErrors = 2

	// ExitWarnings indicates no errors but at least one warning.
	ExitWarnings = 3
)

// ExitError carries a process exit code through cobra's error return path.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
