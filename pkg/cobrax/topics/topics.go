// Package topics adds help topics to a Cobra command tree. Topics are
// text or markdown documents read from an fs.FS, typically embedded in the
// binary, and are shown with "<app> help <topic>". Flag-style lookups such
// as "help --dry-run" resolve to a topic named "option-dry-run".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const optionPrefix = "option-"

// Topic is one help document
type Topic struct {
	Name   string
	Format string // file extension, e.g. ".md"
	Body   string
}

// Options configures a Manager
type Options struct {
	// Extensions accepted as topics. Defaults to .txt and .md.
	Extensions []string

	// Renderer formats a topic for the terminal. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics loaded for an application
type Manager struct {
	topics   map[string]Topic
	renderer Renderer
}

// Load reads every topic file directly under dir in fsys
func Load(fsys fs.FS, dir string, opts Options) (*Manager, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".md"}
	}
	m := &Manager{topics: make(map[string]Topic), renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !contains(exts, ext) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ext)
		m.topics[name] = Topic{Name: name, Format: ext, Body: string(data)}
	}
	return m, nil
}

// Get finds a topic by name. "--dry-run" and "dry-run" both match a topic
// named "option-dry-run" when no exact topic exists.
func (m *Manager) Get(name string) (Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics[optionPrefix+name]
	return t, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the rendered topic to w
func (m *Manager) Render(w io.Writer, t Topic) {
	fmt.Fprint(w, m.renderer.Render(t.Body, t.Format))
}

// WriteIndex lists the general and option topics
func (m *Manager) WriteIndex(w io.Writer, app string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, "--"+strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces the help command of root with one that also knows
// about the topics in m. Unknown arguments fall back to command help.
func Install(root *cobra.Command, m *Manager) {
	commandHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf("Help provides help for any command or topic.\n\n"+
			"To see all available help topics:\n  %s help topics", root.Name()),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.Names()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				commandHelp(root, args)
			case args[0] == "topics":
				m.WriteIndex(out, root.Name())
			default:
				if t, ok := m.Get(args[0]); ok {
					m.Render(out, t)
					return
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					fmt.Fprintf(out, "Unknown help topic %q\n", args[0])
					_ = root.Usage()
					return
				}
				commandHelp(target, args)
			}
		},
	}

	root.SetHelpCommand(helpCmd)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
