package syntax

import "strings"

// CommandPrefix is the fixed lead-in for an in-source directive (§6):
// "Single-line comments of the form // periphery:<command>[:<args>]".
const CommandPrefix = "periphery:"

// Command kinds recognized by the grammar (§6, §4.3).
const (
	CmdIgnore           = "ignore"
	CmdIgnoreAll         = "ignore-all"
	CmdIgnoreParameters  = "ignore-parameters"
)

// Command is one parsed comment command.
type Command struct {
	Name string
	Args []string
}

// ParseCommand parses a single comment's text (with or without the leading
// "//") into a Command, returning ok=false if it does not match the
// grammar. Arguments are comma-separated identifiers following a second
// colon.
func ParseCommand(commentText string) (Command, bool) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(commentText), "//"))
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, CommandPrefix) {
		return Command{}, false
	}
	rest := strings.TrimPrefix(text, CommandPrefix)

	name := rest
	var argsPart string
	if idx := strings.Index(rest, ":"); idx >= 0 {
		name = rest[:idx]
		argsPart = rest[idx+1:]
	}
	name = strings.TrimSpace(name)

	switch name {
	case CmdIgnore, CmdIgnoreAll, CmdIgnoreParameters:
	default:
		return Command{}, false
	}

	cmd := Command{Name: name}
	if argsPart != "" {
		for _, a := range strings.Split(argsPart, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				cmd.Args = append(cmd.Args, a)
			}
		}
	}
	return cmd, true
}

// ParseAll parses every recognized command out of a raw CommentCommands set
// as produced by the visitor (each entry already isolated to one comment's
// text by the provider).
func ParseAll(raw []string) []Command {
	var out []Command
	for _, r := range raw {
		if cmd, ok := ParseCommand(r); ok {
			out = append(out, cmd)
		}
	}
	return out
}
