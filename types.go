package ccap

import "github.com/eisnstein/ccap/core"

// Argument declares one named command-line argument.
//
// An Argument is a boolean option until ExpectsValue is called, after which
// the token following its flag is taken as its value.
//
// Usage:
//
//	ccap.NewArgument("file").SetShort('f').SetLong("file").ExpectsValue().Required()
type Argument = core.Argument

// ArgumentSet holds the process arguments and the declarations they are
// parsed against.
type ArgumentSet = core.ArgumentSet

// TerminationType selects how Parse reports a required argument without a value.
type TerminationType = core.TerminationType

const (
	// ExitProcess prints "Error: Missing required value for argument '<name>'"
	// to stderr and exits with status 1. This is the default.
	ExitProcess = core.ExitProcess
	// RaiseError makes Parse return an errors.MissingValueError instead.
	RaiseError = core.RaiseError
)
