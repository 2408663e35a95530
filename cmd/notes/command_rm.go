package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"notes/internal/session"
)

type RemoveCommand struct {
	env commandEnv
}

func NewRemoveCommand(env commandEnv) *RemoveCommand {
	return &RemoveCommand{env: env}
}

func (c *RemoveCommand) Run(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requireNoteID(fs.Args(), "notes rm <id> [--yes]")
	if err != nil {
		return err
	}

	confirm := stdinConfirm(c.env.stdin, c.env.stderr)
	if *yes {
		confirm = func(context.Context, string) bool { return true }
	}
	ctx := context.Background()
	ctl, err := c.env.controller(*verbose, session.WithConfirm(confirm))
	if err != nil {
		return err
	}
	if err := ctl.LoadAll(ctx); err != nil {
		return err
	}
	if _, ok := ctl.Snapshot().Lookup(id); !ok {
		return fmt.Errorf("%s (id %s)", session.MsgNotFound, id)
	}
	if err := ctl.SelectNote(id); err != nil {
		return err
	}
	err = ctl.Delete(ctx)
	if errors.Is(err, session.ErrDeclined) {
		fmt.Fprintln(c.env.stderr, "aborted")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.env.stdout, id)
	return nil
}
