package main

import (
	"context"
	"encoding/json"
	"flag"
)

type ListCommand struct {
	env commandEnv
}

func NewListCommand(env commandEnv) *ListCommand {
	return &ListCommand{env: env}
}

func (c *ListCommand) Run(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	asJSON := fs.Bool("json", false, "print notes as JSON")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctl, err := c.env.controller(*verbose)
	if err != nil {
		return err
	}
	if err := ctl.LoadAll(context.Background()); err != nil {
		return err
	}
	notes := ctl.Snapshot().Notes
	if *asJSON {
		encoder := json.NewEncoder(c.env.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	}
	printNotes(c.env.stdout, notes)
	return nil
}
