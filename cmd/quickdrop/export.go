package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportDir string

// frontMatter is the YAML header written at the top of exported files.
type frontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Category    string    `yaml:"category"`
	Tags        []string  `yaml:"tags,omitempty"`
	Pinned      bool      `yaml:"pinned,omitempty"`
	CreatedAt   time.Time `yaml:"created_at"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

var exportCmd = &cobra.Command{
	Use:   "export [id] [file]",
	Short: "Export a note as Markdown",
	Long: `Export a note to a Markdown file with YAML frontmatter. Without a file
argument the note is written to stdout. With --all, every active note is
exported into the given directory.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		ctx := context.Background()

		if exportDir != "" {
			if err := os.MkdirAll(exportDir, 0755); err != nil {
				fatal("Failed to create export directory", err)
			}
			count := 0
			used := make(map[string]bool)
			for _, note := range store.ActiveNotes(ctx) {
				path := filepath.Join(exportDir, exportFileName(note, used)+".md")
				if err := os.WriteFile(path, renderMarkdown(note), 0644); err != nil {
					fatal("Failed to write "+path, err)
				}
				count++
			}
			fmt.Printf("Exported %d note(s) to %s\n", count, exportDir)
			return
		}

		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: note ID required (or use --all)")
			cmd.Usage()
			os.Exit(1)
		}

		note := store.NoteByID(ctx, args[0])
		if note == nil {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		out := renderMarkdown(*note)
		if len(args) == 2 {
			if err := os.WriteFile(args[1], out, 0644); err != nil {
				fatal("Failed to write "+args[1], err)
			}
			fmt.Printf("Exported %q to %s\n", note.Title, args[1])
			return
		}
		os.Stdout.Write(out)
	},
}

// renderMarkdown serializes a note as YAML frontmatter plus body.
func renderMarkdown(note core.Note) []byte {
	fm := frontMatter{
		Title:       note.Title,
		Description: note.Description,
		Category:    note.Category,
		Tags:        note.Tags,
		Pinned:      note.Pinned,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return []byte(note.Content)
	}
	return []byte(fmt.Sprintf("---\n%s---\n\n%s\n", header, strings.TrimRight(note.Content, "\n")))
}

// exportFileName derives a file name (sans extension) for a note,
// suffixing a short ID when two titles slugify to the same name so
// exports never overwrite each other.
func exportFileName(note core.Note, used map[string]bool) string {
	name := slugify(note.Title)
	if used[name] {
		id := note.ID
		if len(id) > 8 {
			id = id[:8]
		}
		name += "-" + id
	}
	used[name] = true
	return name
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "all", "", "Export every active note into this directory")
}
