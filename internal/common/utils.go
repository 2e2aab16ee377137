package common

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// TokenKind classifies a raw command-line token.
type TokenKind int

const (
	Plain TokenKind = iota // anything not starting with a dash
	Long                   // --name
	Short                  // -c
)

// Classify reports which flag form, if any, the token is written in.
func Classify(token string) TokenKind {
	switch {
	case strings.HasPrefix(token, "--"):
		return Long
	case strings.HasPrefix(token, "-"):
		return Short
	default:
		return Plain
	}
}

// LongName strips the leading `--` from token. The result is empty for a bare `--`.
func LongName(token string) string {
	return strings.TrimPrefix(token, "--")
}

// ShortName returns the first character after the leading dash, or 0 when
// the token is a lone `-`. Anything after that character is ignored.
func ShortName(token string) rune {
	rest := strings.TrimPrefix(token, "-")
	if rest == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
