package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"notes/internal/session"
)

type EditCommand struct {
	env commandEnv
}

func NewEditCommand(env commandEnv) *EditCommand {
	return &EditCommand{env: env}
}

// Run fetches the note, overlays the flags that were set and saves. The list
// is loaded first so the fetched note resolves as the selection.
func (c *EditCommand) Run(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requireNoteID(fs.Args(), "notes edit <id> [--title T] [--content C]")
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["title"] && !set["content"] {
		return errors.New("nothing to change: pass --title and/or --content")
	}

	ctx := context.Background()
	ctl, err := c.env.controller(*verbose)
	if err != nil {
		return err
	}
	if err := ctl.LoadAll(ctx); err != nil {
		return err
	}
	if err := ctl.LoadOne(ctx, id); err != nil {
		return err
	}
	if err := ctl.BeginEdit(); err != nil {
		return err
	}
	state := ctl.Snapshot()
	if state.Mode != session.ModeEditing || state.Draft == nil {
		return fmt.Errorf("note %s is not in the list", id)
	}
	nextTitle, nextContent := state.Draft.Title, state.Draft.Content
	if set["title"] {
		nextTitle = *title
	}
	if set["content"] {
		nextContent = *content
	}
	if err := ctl.SetDraft(nextTitle, nextContent); err != nil {
		return err
	}
	if err := ctl.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.env.stdout, id)
	return nil
}
