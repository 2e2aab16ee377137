package core

// Argument describes one named command-line argument: how it is spelled on
// the command line, whether it takes a value, and what parsing found for it.
//
// The setters return the receiver so declarations can be chained:
//
//	NewArgument("file").SetShort('f').SetLong("file").ExpectsValue().Required()
type Argument struct {
	name  string
	short rune
	long  string
	desc  string
	value string

	required     bool
	expectsValue bool
	isOption     bool
	given        bool
}

// NewArgument returns a boolean option identified by name with no flag spellings.
func NewArgument(name string) *Argument {
	return &Argument{name: name, isOption: true}
}

// WithName is an alias of NewArgument.
func WithName(name string) *Argument { return NewArgument(name) }

func (a *Argument) Name() string { return a.name }

func (a *Argument) Short() rune { return a.short }

func (a *Argument) SetShort(s rune) *Argument {
	a.short = s
	return a
}

func (a *Argument) Long() string { return a.long }

func (a *Argument) SetLong(l string) *Argument {
	a.long = l
	return a
}

func (a *Argument) Desc() string { return a.desc }

// SetDesc sets the text shown next to the argument in help output.
func (a *Argument) SetDesc(d string) *Argument {
	a.desc = d
	return a
}

// Value returns the parsed value. An empty value counts as absent.
func (a *Argument) Value() (string, bool) {
	if a.value == "" {
		return "", false
	}
	return a.value, true
}

func (a *Argument) SetValue(v string) *Argument {
	a.value = v
	return a
}

// ExpectsValue makes the argument consume the token that follows its flag.
// A value-taking argument is never an option.
func (a *Argument) ExpectsValue() *Argument {
	a.expectsValue = true
	a.isOption = false
	return a
}

func (a *Argument) IsExpectingValue() bool { return a.expectsValue }

// Required makes parsing fail unless the argument ends up with a value.
func (a *Argument) Required() *Argument {
	a.required = true
	return a
}

func (a *Argument) IsRequired() bool { return a.required }

// IsOption reports whether the argument is a presence-only flag.
func (a *Argument) IsOption() bool { return a.isOption }

func (a *Argument) IsGiven() bool { return a.given }

func (a *Argument) SetGiven(g bool) *Argument {
	a.given = g
	return a
}
