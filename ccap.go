package ccap

import "github.com/eisnstein/ccap/core"

// NewArgument returns a new boolean option identified by name. The name is
// what Get and IsGiven look up; it is independent of the flag spellings.
var NewArgument = core.NewArgument

// WithName is an alias of NewArgument.
var WithName = core.WithName

// From creates an ArgumentSet from a full argument vector such as os.Args.
// The first element is the program name and is discarded.
//
// Usage:
//
//	args := ccap.From(os.Args).
//		SetName("mytool").
//		Arg(ccap.NewArgument("name").SetShort('n').SetLong("name").ExpectsValue().Required()).
//		Arg(ccap.NewArgument("verbose").SetShort('v').SetLong("verbose"))
//
//	if err := args.Parse(); err != nil {
//		log.Fatal(err)
//	}
//
//	name, _ := args.Get("name")
//	verbose := args.IsGiven("verbose")
//
// If `-h` or `--help` appears anywhere in the arguments, Parse prints a
// usage summary and exits the program.
var From = core.From

// FromOS is shorthand for From(os.Args).
var FromOS = core.FromOS
