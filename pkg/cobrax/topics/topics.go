// Package topics adds file-backed help topics to a cobra command tree.
// Topics load from any fs.FS, typically an embedded docs directory, and
// sit next to regular command help under the shared help command, so a
// binary carries its own manual.
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

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw content and the file extension it was read from
	// and returns terminal-ready text.
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns the content as is.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// Topic is a single help topic.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the Manager.
type Options struct {
	// Extensions lists the file extensions treated as topics.
	// Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the scanned topics for one command tree.
type Manager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// New creates a Manager reading topics from fsys with default options.
func New(fsys fs.FS) *Manager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a Manager with custom options.
func NewWithOptions(fsys fs.FS, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	return m
}

// scan walks the topic tree and loads every supported file. The topic
// name is the base filename without its extension, wherever the file
// sits in the tree.
func (m *Manager) scan() error {
	return fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range m.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Path:    p,
			Content: string(content),
		}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag spellings resolve to their
// option topic, so "--exclude" and "exclude" both find "option-exclude".
func (m *Manager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, exists := m.topics[name]
	if exists {
		return topic, true
	}

	topic, exists = m.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names.
func (m *Manager) ListTopics() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	return names
}

// Initialize mounts the topic help system on rootCmd with default
// options.
func Initialize(rootCmd *cobra.Command, fsys fs.FS) error {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions scans fsys and replaces rootCmd's help command
// with one that serves both commands and topics. Unknown names fall
// back to stock cobra help.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) error {
	m := NewWithOptions(fsys, opts)

	if err := m.scan(); err != nil {
		return fmt.Errorf("failed to scan help topics: %w", err)
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		// Flag spellings like "help --exclude" must reach the topic
		// lookup instead of the flag parser.
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				m.printTopicList(out, rootCmd.Name())
				return
			}

			if topic, exists := m.GetTopic(args[0]); exists {
				fmt.Fprint(out, m.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}

			// Not a topic, resolve as a command the way stock help does.
			target, _, findErr := rootCmd.Find(args)
			if target == nil || findErr != nil {
				fmt.Fprintf(out, "Unknown help topic %#q\n", args)
				_ = rootCmd.Usage()
				return
			}
			_ = target.Help()
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}

	// SetHelpCommand keeps cobra from re-adding its stock help command
	// at execute time.
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(helpCmd)

	// The --help flag goes through the help function, so topic names
	// work there too.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, exists := m.GetTopic(args[0]); exists {
				fmt.Fprint(cmd.OutOrStdout(), m.renderer.Render(topic.Content, path.Ext(topic.Path)))
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}

func (m *Manager) printTopicList(out io.Writer, appName string) {
	names := m.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(out, "No help topics available.")
		return
	}
	sort.Strings(names)

	var options []string
	var general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}
