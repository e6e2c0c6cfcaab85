// Package exitcode defines the process exit codes shared by the
// command-line tools.
package exitcode

// Exit codes for the geohash CLI.
// Wrapper scripts can use these to decide whether a retry makes sense.
const (
	// OK - coordinates were computed and printed
	OK = 0

	// InvalidInput - bad flags or arguments (graticule out of range, malformed date)
	// Don't retry: fix the invocation first
	InvalidInput = 1

	// PriceUnavailable - every Dow source failed for the requested date
	// Retry later: the mirrors usually come back within minutes
	PriceUnavailable = 2

	// Failure - the computation or output stage failed for another reason
	// Check logs before retrying
	Failure = 3

	// Unexpected - the program panicked or hit a state it has no handling for
	Unexpected = 4
)
