// Package ccap is a small command-line argument parsing library.
//
// Arguments are declared with a fluent builder, registered on an ArgumentSet
// built from the process arguments, and parsed in a single pass. Long flags
// (`--name`), short flags (`-n`), value-taking arguments and required
// arguments are supported; any other token is ignored.
//
// When a required argument ends up without a value, Parse either exits the
// process with a diagnostic or returns an error, depending on the configured
// TerminationType.
package ccap
