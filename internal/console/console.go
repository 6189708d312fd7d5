package console

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Command is one console command. Run returns output lines for the client.
type Command struct {
	Name  string
	Usage string
	Help  string
	Run   func(args []string) ([]string, error)
}

// Fallback resolves commands the registry does not know. The scripting
// engine implements this to serve Lua-defined commands.
type Fallback interface {
	Exec(name string, args []string) (lines []string, handled bool, err error)
}

// Console dispatches command lines to registered commands, then to the
// fallback. Registration happens at startup; Exec runs on the game loop.
type Console struct {
	mu       sync.RWMutex
	commands map[string]*Command
	fallback Fallback
}

func New() *Console {
	c := &Console{commands: make(map[string]*Command, 32)}
	c.Register(&Command{
		Name:  "help",
		Usage: "help [command]",
		Help:  "list commands or show one command's usage",
		Run:   c.runHelp,
	})
	return c
}

// SetFallback installs the handler tried after registry lookup fails.
func (c *Console) SetFallback(f Fallback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fallback = f
}

// Register adds a command. A duplicate name is a startup bug.
func (c *Console) Register(cmd *Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.commands[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	c.commands[cmd.Name] = cmd
	return nil
}

// Names returns registered command names, sorted.
func (c *Console) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exec parses and runs one command line.
func (c *Console) Exec(line string) ([]string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, nil
	}
	name, args := parts[0], parts[1:]

	c.mu.RLock()
	cmd, ok := c.commands[name]
	fallback := c.fallback
	c.mu.RUnlock()

	if ok {
		return cmd.Run(args)
	}
	if fallback != nil {
		lines, handled, err := fallback.Exec(name, args)
		if handled {
			return lines, err
		}
	}
	return nil, fmt.Errorf("unknown command %q, try help", name)
}

func (c *Console) runHelp(args []string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(args) > 0 {
		cmd, ok := c.commands[args[0]]
		if !ok {
			return nil, fmt.Errorf("unknown command %q", args[0])
		}
		return []string{cmd.Usage, "  " + cmd.Help}, nil
	}

	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, c.commands[name].Help})
	}
	return Table([]string{"command", "description"}, rows), nil
}
