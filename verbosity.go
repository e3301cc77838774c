// Package verbosity provides a process-wide verbosity level for CLI tools.
//
// A tool parses one of the tokens "Quiet", "Terse" or "Verbose" from its
// command line, installs the result exactly once at start-up, and every call
// site afterwards queries the shared level to decide how much to report:
//
//	level, err := verbosity.Parse(flagValue)
//	if err != nil {
//	    level = verbosity.Quiet
//	}
//	verbosity.Install(level)
//
//	switch verbosity.Current() {
//	case verbosity.Quiet:
//	case verbosity.Terse:
//	    fmt.Println("terse message")
//	case verbosity.Verbose:
//	    fmt.Println("overly verbose message for some command")
//	}
//
// The package decides "how loud", never "where to": it owns no output and
// performs no I/O. Higher-level reporting helpers are expected to consume
// Current and the ordering of Level and nothing else.
package verbosity

import "fmt"

// Level is a verbosity level, ordered from least to most verbose.
// The zero value is Quiet.
type Level int32

const (
	// Quiet suppresses all optional reporting.
	Quiet Level = iota

	// Terse emits short summary reporting only.
	Terse

	// Verbose emits full detailed reporting.
	Verbose
)

// ParseError reports that a token does not name a verbosity level.
// It is the only error this package produces.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown verbosity level: %q", e.Token)
}

// Parse matches s against the canonical tokens "Quiet", "Terse" and
// "Verbose". Matching is case-sensitive: "verbose" is not a level.
//
// Any other input, including the empty string, fails with a *ParseError.
// Parse never falls back to a default; choosing one is the caller's decision.
func Parse(s string) (Level, error) {
	switch s {
	case "Quiet":
		return Quiet, nil
	case "Terse":
		return Terse, nil
	case "Verbose":
		return Verbose, nil
	default:
		return Quiet, &ParseError{Token: s}
	}
}

// String returns the canonical token for the level, so that
// Parse(l.String()) round-trips.
func (l Level) String() string {
	switch l {
	case Terse:
		return "Terse"
	case Verbose:
		return "Verbose"
	default:
		return "Quiet"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same
// case-sensitive tokens as Parse.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
