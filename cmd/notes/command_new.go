package main

import (
	"context"
	"flag"
	"fmt"
)

type NewCommand struct {
	env commandEnv
}

func NewNewCommand(env commandEnv) *NewCommand {
	return &NewCommand{env: env}
}

func (c *NewCommand) Run(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	title := fs.String("title", "", "note title (required)")
	content := fs.String("content", "", "note content")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctl, err := c.env.controller(*verbose)
	if err != nil {
		return err
	}
	if err := ctl.BeginCreate(); err != nil {
		return err
	}
	if err := ctl.SetDraft(*title, *content); err != nil {
		return err
	}
	if err := ctl.Save(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(c.env.stdout, ctl.Snapshot().SelectedID)
	return nil
}
