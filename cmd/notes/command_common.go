package main

import (
	"bufio"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"notes/internal/app"
	"notes/internal/app/sanitizer"
	"notes/internal/session"
	"notes/internal/types"
)

const version = "dev"

func printNotes(output io.Writer, notes []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tSNIPPET")
	for _, note := range notes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", note.ID, sanitizer.Title(note.Title), app.ContentSnippet(note.Content))
	}
	_ = writer.Flush()
}

func requireNoteID(args []string, usage string) (types.NoteID, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return types.NoteID(strings.TrimSpace(args[0])), nil
}

// stdinConfirm reads a y/N answer. Anything other than y or yes declines.
func stdinConfirm(in io.Reader, out io.Writer) session.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, prompt string) bool {
		if ctx.Err() != nil {
			return false
		}
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}
	return version
}
