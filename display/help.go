package display

import (
	"fmt"
	"strings"
)

// Meta holds the descriptive metadata of a command-line tool.
type Meta struct {
	Name    string
	About   string
	Author  string
	Version string
}

// Entry summarises one declared argument for rendering.
type Entry struct {
	Name         string
	Short        rune
	Long         string
	Desc         string
	ExpectsValue bool
	Required     bool
}

// BuildHelp renders a usage summary for the tool described by meta and its
// declared arguments. Section headers are styled when color is true.
func BuildHelp(meta Meta, entries []Entry, color bool) string {
	var builder strings.Builder

	builder.WriteString(ansiHelp(color, BuildVersion(meta), ansiBold) + "\n")
	if meta.Author != "" {
		builder.WriteString(meta.Author + "\n")
	}
	if meta.About != "" {
		builder.WriteString(meta.About + "\n")
	}

	name := meta.Name
	if name == "" {
		name = "<app>"
	}
	builder.WriteString("\n" + ansiHelp(color, "Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(color, name, ansiBold))
	for _, e := range requiredEntries(entries) {
		builder.WriteString(" " + usageSpelling(e))
	}
	builder.WriteString(" [OPTIONS]\n")

	builder.WriteString("\n" + ansiHelp(color, "Options:", ansiBold, ansiUnderline) + "\n")
	builder.WriteString(optionsHelp(entries))

	return builder.String()
}

// === HELPERS ===

// optionsHelp generates one aligned line per flag-bearing entry, followed by the help flag.
func optionsHelp(entries []Entry) string {
	var lines []string
	maxLen := 0

	for _, e := range entries {
		if e.Short == 0 && e.Long == "" {
			continue
		}

		flag := "  " + flagSpelling(e)
		if e.ExpectsValue {
			flag += " " + valueHint(e)
		}

		desc := e.Desc
		if e.Required {
			desc = strings.TrimSpace(desc + " (required)")
		}

		if len(flag) > maxLen {
			maxLen = len(flag)
		}
		lines = append(lines, fmt.Sprintf("%s||%s", flag, desc))
	}

	help := "  -h, --help"
	if len(help) > maxLen {
		maxLen = len(help)
	}
	lines = append(lines, help+"||Show this help message")

	// Format with aligned descriptions
	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(strings.TrimRight(fmt.Sprintf("%s%s  %s", parts[0], padding, parts[1]), " ") + "\n")
	}
	return builder.String()
}

func flagSpelling(e Entry) string {
	switch {
	case e.Short != 0 && e.Long != "":
		return fmt.Sprintf("-%c, --%s", e.Short, e.Long)
	case e.Short != 0:
		return fmt.Sprintf("-%c", e.Short)
	default:
		return "--" + e.Long
	}
}

// usageSpelling is the compact form of a required entry on the usage line.
func usageSpelling(e Entry) string {
	var s string
	switch {
	case e.Long != "":
		s = "--" + e.Long
	case e.Short != 0:
		s = fmt.Sprintf("-%c", e.Short)
	default:
		return valueHint(e)
	}
	if e.ExpectsValue {
		s += " " + valueHint(e)
	}
	return s
}

func valueHint(e Entry) string {
	return fmt.Sprintf("<%s>", strings.ToUpper(e.Name))
}

// requiredEntries returns the entries marked as required, in declaration order.
func requiredEntries(entries []Entry) []Entry {
	var required []Entry
	for _, e := range entries {
		if e.Required {
			required = append(required, e)
		}
	}
	return required
}
