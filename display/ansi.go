package display

import "strings"

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
)

// ansiHelp wraps s in the given escape codes, or returns it unchanged when color is off.
func ansiHelp(color bool, s string, codes ...string) string {
	if !color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}
