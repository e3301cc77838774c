package verbosity

import (
	"flag"

	"github.com/spf13/pflag"
)

// Flag binds a command-line flag to a Level, keeping the choice of fallback
// on the caller's side. An unparsed or absent flag yields the fallback; an
// unrecognized token is rejected at Set time by the flag machinery.
//
//	v := verbosity.NewFlag(verbosity.Quiet)
//	cmd.Flags().Var(v, "verbosity", "reporting level: Quiet|Terse|Verbose")
//	...
//	v.Install()
type Flag struct {
	fallback Level
	set      bool
	level    Level
}

var (
	_ flag.Value  = (*Flag)(nil)
	_ pflag.Value = (*Flag)(nil)
)

// NewFlag returns a Flag that yields fallback until the flag is set.
func NewFlag(fallback Level) *Flag {
	return &Flag{fallback: fallback}
}

// Level returns the parsed level, or the fallback if the flag was never set.
func (f *Flag) Level() Level {
	if f.set {
		return f.level
	}
	return f.fallback
}

// Set parses value with the same case-sensitive tokens as Parse.
func (f *Flag) Set(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	f.level = parsed
	f.set = true
	return nil
}

// String returns the canonical token for Level().
func (f *Flag) String() string {
	return f.Level().String()
}

// Type describes the flag value for pflag usage lines.
func (f *Flag) Type() string {
	return "level"
}

// Install installs Level() as the process-wide verbosity.
// It reports whether this call won the one-time install.
func (f *Flag) Install() bool {
	return Install(f.Level())
}
