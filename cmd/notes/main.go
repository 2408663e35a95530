package main

import (
	"fmt"
	"os"
)

const usageText = `notes is a terminal client for the notes API.

Usage:
  notes <command> [flags]

Commands:
  ui       run the terminal UI (default)
  ls       list notes
  show     print one note
  new      create a note
  edit     update a note
  rm       delete a note
  config   print configuration (effective or defaults)
  version  print build version
  help     show help

Flags:
  -h, --help   show help

Environment:
  NOTES_API_URL   API base URL (default http://localhost:5000)
  NOTES_HOME      data dir for config.toml and ui.log (default ~/.notes)

Examples:
  notes ls
  notes new --title "Groceries" --content "milk, eggs"
  notes edit 3 --title "Groceries (weekend)"
  notes rm 3 --yes
  notes config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"ui"}
	}

	wiring := defaultCommandWiring(os.Stdin, os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
