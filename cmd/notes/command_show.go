package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"notes/internal/app/sanitizer"
	"notes/internal/types"
)

type ShowCommand struct {
	env commandEnv
}

func NewShowCommand(env commandEnv) *ShowCommand {
	return &ShowCommand{env: env}
}

func (c *ShowCommand) Run(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	asJSON := fs.Bool("json", false, "print the note as JSON")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requireNoteID(fs.Args(), "notes show <id>")
	if err != nil {
		return err
	}

	ctl, err := c.env.controller(*verbose)
	if err != nil {
		return err
	}
	if err := ctl.LoadOne(context.Background(), id); err != nil {
		return err
	}
	draft := ctl.Snapshot().Draft
	if draft == nil {
		return errors.New("note was not loaded")
	}
	note := types.Note{ID: draft.NoteID, Title: draft.Title, Content: draft.Content}
	if *asJSON {
		encoder := json.NewEncoder(c.env.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(note)
	}
	fmt.Fprintf(c.env.stdout, "%s\n\n%s\n", sanitizer.Title(note.Title), sanitizer.Content(note.Content))
	return nil
}
