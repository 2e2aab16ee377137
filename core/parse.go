package core

import (
	"fmt"
	"io"
	"os"

	"github.com/eisnstein/ccap/display"
	"github.com/eisnstein/ccap/errors"
	"github.com/eisnstein/ccap/internal/common"
)

var osExit = os.Exit // Mockable for testing

// TerminationType selects what Parse does when a required argument has no value.
type TerminationType int

const (
	// ExitProcess prints a diagnostic to stderr and exits with status 1.
	ExitProcess TerminationType = iota
	// RaiseError returns an errors.MissingValueError to the caller.
	RaiseError
)

const defaultVersion = "0.0.1"

// ArgumentSet owns the raw process arguments and the declared arguments
// they are parsed against.
type ArgumentSet struct {
	raw         []string
	args        []Argument
	termination TerminationType

	about   string
	author  string
	name    string
	version string

	stdout io.Writer
	stderr io.Writer
}

// From creates an ArgumentSet from a full argument vector. The first element
// is the program name and is discarded.
func From(args []string) *ArgumentSet {
	var raw []string
	if len(args) > 1 {
		raw = append(raw, args[1:]...)
	}
	return &ArgumentSet{
		raw:     raw,
		version: defaultVersion,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// FromOS creates an ArgumentSet from os.Args.
func FromOS() *ArgumentSet {
	return From(os.Args)
}

// Count returns the number of raw arguments, excluding the program name.
func (s *ArgumentSet) Count() int { return len(s.raw) }

// Arg adds a copy of the given declaration. Later changes to item do not
// affect the set.
func (s *ArgumentSet) Arg(item *Argument) *ArgumentSet {
	s.args = append(s.args, *item)
	return s
}

// Get returns the value of the first argument declared with the given name.
func (s *ArgumentSet) Get(name string) (string, bool) {
	if a := s.lookup(name); a != nil {
		return a.Value()
	}
	return "", false
}

// IsGiven reports whether the first argument declared with the given name is
// an option that appeared on the command line. It is always false for
// value-taking arguments; use Get for those.
func (s *ArgumentSet) IsGiven(name string) bool {
	if a := s.lookup(name); a != nil {
		return a.IsOption() && a.IsGiven()
	}
	return false
}

func (s *ArgumentSet) lookup(name string) *Argument {
	for i := range s.args {
		if s.args[i].Name() == name {
			return &s.args[i]
		}
	}
	return nil
}

// Parse scans the raw arguments once, left to right, and updates every
// matching declaration. Tokens that are not flags are ignored, and a token
// consumed as a value is still inspected as a flag on its own turn.
//
// `-h` or `--help` anywhere prints the help text and exits with status 0.
//
// After the scan the first required argument without a value is passed to
// Terminate, whose result is returned.
func (s *ArgumentSet) Parse() error {
	for i, token := range s.raw {
		switch common.Classify(token) {
		case common.Long:
			name := common.LongName(token)
			if name == "" {
				continue
			}
			if name == "help" {
				s.ShowHelp()
				return nil
			}
			s.readArg(i, func(a *Argument) bool { return a.Long() == name })
		case common.Short:
			short := common.ShortName(token)
			if short == 0 {
				continue
			}
			if short == 'h' {
				s.ShowHelp()
				return nil
			}
			s.readArg(i, func(a *Argument) bool { return a.Short() == short })
		}
	}

	// Every required argument must have ended up with a value.
	for i := range s.args {
		if s.args[i].IsRequired() {
			if _, ok := s.args[i].Value(); !ok {
				return s.Terminate(&s.args[i])
			}
		}
	}

	return nil
}

// readArg applies the token at index i to every declaration it matches.
// A value-taking match with no following token stops processing of the token.
func (s *ArgumentSet) readArg(i int, match func(*Argument) bool) {
	for j := range s.args {
		arg := &s.args[j]
		if !match(arg) {
			continue
		}

		if arg.IsExpectingValue() {
			if i+1 >= len(s.raw) {
				return
			}
			arg.SetValue(s.raw[i+1])
		}

		if arg.IsOption() {
			arg.SetGiven(true)
		}
	}
}

// Terminate reports a required argument that has no value, according to the
// configured TerminationType. Under ExitProcess it does not return unless
// the exit function has been replaced.
func (s *ArgumentSet) Terminate(arg *Argument) error {
	err := errors.NewMissingValue(arg.Name())
	if s.termination == RaiseError {
		return err
	}

	fmt.Fprintf(s.stderr, "Error: Missing required value for argument '%s'\n", arg.Name())
	osExit(1)
	return err
}

// SetTerminationType sets what Parse does on a missing required value.
func (s *ArgumentSet) SetTerminationType(t TerminationType) {
	s.termination = t
}

// SetOutput replaces the writers used for help text and diagnostics.
// A nil writer leaves the current one in place.
func (s *ArgumentSet) SetOutput(stdout, stderr io.Writer) *ArgumentSet {
	if stdout != nil {
		s.stdout = stdout
	}
	if stderr != nil {
		s.stderr = stderr
	}
	return s
}

func (s *ArgumentSet) SetAbout(about string) *ArgumentSet {
	s.about = about
	return s
}

func (s *ArgumentSet) SetAuthor(author string) *ArgumentSet {
	s.author = author
	return s
}

func (s *ArgumentSet) SetName(name string) *ArgumentSet {
	s.name = name
	return s
}

func (s *ArgumentSet) SetVersion(version string) *ArgumentSet {
	s.version = version
	return s
}

// Help renders the usage summary for the declared arguments.
func (s *ArgumentSet) Help() string {
	return display.BuildHelp(s.meta(), s.entries(), common.IsTerminal(s.stdout))
}

// Version returns the tool's name and version, e.g. "mytool v0.0.1".
func (s *ArgumentSet) Version() string {
	return display.BuildVersion(s.meta())
}

// ShowHelp prints the help text and exits with status 0.
func (s *ArgumentSet) ShowHelp() {
	fmt.Fprint(s.stdout, s.Help())
	osExit(0)
}

func (s *ArgumentSet) meta() display.Meta {
	return display.Meta{
		Name:    s.name,
		About:   s.about,
		Author:  s.author,
		Version: s.version,
	}
}

func (s *ArgumentSet) entries() []display.Entry {
	entries := make([]display.Entry, 0, len(s.args))
	for i := range s.args {
		a := &s.args[i]
		entries = append(entries, display.Entry{
			Name:         a.Name(),
			Short:        a.Short(),
			Long:         a.Long(),
			Desc:         a.Desc(),
			ExpectsValue: a.IsExpectingValue(),
			Required:     a.IsRequired(),
		})
	}
	return entries
}
