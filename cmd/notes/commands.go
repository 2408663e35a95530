package main

import (
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdin              io.Reader
	stdout             io.Writer
	stderr             io.Writer
	loadConfig         configLoader
	newAPI             apiFactory
	runUI              uiRunner
	configureUILogging func() io.Writer
	version            string
}

func defaultCommandWiring(stdin io.Reader, stdout, stderr io.Writer) commandWiring {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdin:              stdin,
		stdout:             stdout,
		stderr:             stderr,
		loadConfig:         loadConfig,
		newAPI:             newNotesAPI,
		runUI:              runUI,
		configureUILogging: configureUILogging,
		version:            buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	env := commandEnv{
		stdin:      wiring.stdin,
		stdout:     wiring.stdout,
		stderr:     wiring.stderr,
		loadConfig: wiring.loadConfig,
		newAPI:     wiring.newAPI,
	}
	return map[string]commandRunner{
		"ui":      NewUICommand(env, wiring.runUI, wiring.configureUILogging),
		"ls":      NewListCommand(env),
		"show":    NewShowCommand(env),
		"new":     NewNewCommand(env),
		"edit":    NewEditCommand(env),
		"rm":      NewRemoveCommand(env),
		"config":  NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"version": NewVersionCommand(wiring.stdout, wiring.version),
	}
}
