package types

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/smbsnap/pkg/errors"
)

// CommandKind tells the executor how a command must be launched
type CommandKind int

const (
	// CommandNone is the zero value, an unset (optional) command
	CommandNone CommandKind = iota
	// CommandShell is a single line interpreted by the configured shell
	CommandShell
	// CommandArgv is an explicit argument vector, executed without a shell
	CommandArgv
)

// String returns a human readable kind name
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandShell:
		return "shell"
	case CommandArgv:
		return "argv"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Command is either a shell line or an argument vector.
// Build it with ShellLine or Argv.
type Command struct {
	Kind CommandKind
	Line string
	Args []string
}

// ShellLine creates a command interpreted by the shell
func ShellLine(line string) Command {
	return Command{Kind: CommandShell, Line: line}
}

// Argv creates a command from an explicit argument vector
func Argv(args ...string) Command {
	return Command{Kind: CommandArgv, Args: append([]string(nil), args...)}
}

// IsSet reports whether the command holds anything to run
func (c Command) IsSet() bool {
	switch c.Kind {
	case CommandShell:
		return strings.TrimSpace(c.Line) != ""
	case CommandArgv:
		return len(c.Args) > 0
	default:
		return false
	}
}

// Validate checks that the command can be launched
func (c Command) Validate() error {
	switch c.Kind {
	case CommandShell:
		if strings.TrimSpace(c.Line) == "" {
			return errors.New(errors.ErrCommandInvalid, "shell command line is empty")
		}
	case CommandArgv:
		if len(c.Args) == 0 || c.Args[0] == "" {
			return errors.New(errors.ErrCommandInvalid, "argument vector has no program").
				WithDetail("args", c.Args)
		}
	default:
		return errors.Newf(errors.ErrCommandInvalid, "invalid command kind %s", c.Kind)
	}
	return nil
}

// String renders the command the way it is logged
func (c Command) String() string {
	switch c.Kind {
	case CommandShell:
		return c.Line
	case CommandArgv:
		return strings.Join(c.Args, " ")
	default:
		return ""
	}
}
