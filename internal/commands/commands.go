package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Setup declares a command's flags on fs and returns the function to run once they are parsed.
// It is called on every execution with a fresh FlagSet, so flag values never leak between runs.
type Setup func(fs *flag.FlagSet) (run func(args []string) error)

// Command is a registered subcommand.
type Command struct {
	Name  string
	Usage string
	setup Setup
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid"); usage is shown by help.
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, setup: setup}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name: usage" line per command, sorted by name.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, n+": "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for a missing or unknown command, a flag parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run(fs.Args())
}

// Toggle is a Setup for commands of the form "name --<on>|--<off>" that call set with the chosen state.
// Giving neither or both flags is an error.
func Toggle(on, off string, set func(bool) error) Setup {
	return func(fs *flag.FlagSet) func([]string) error {
		onFlag := fs.Bool(on, false, "")
		offFlag := fs.Bool(off, false, "")
		return func([]string) error {
			if *onFlag == *offFlag {
				return fmt.Errorf("use exactly one of --%s or --%s", on, off)
			}
			return set(*onFlag)
		}
	}
}
