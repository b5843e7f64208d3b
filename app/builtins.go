package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

func configCommand() Command {
	return Handle(Definition{
		Name:  "config",
		Short: "Show the effective configuration as YAML.",
		Long: `Show the effective configuration, after flags, environment variables
and the configuration file are merged, as YAML. With --output the
result is written to a file, ready to be used with --config.`,
		Options: []Flag{
			{Name: "output", Shortcut: "o", Description: "Write the configuration to this file."},
		},
	}, exportConfig)
}

func exportConfig(cx *Context) error {
	blob, err := yaml.Marshal(cx.Config.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	target := cx.Option("output")
	if target == "" {
		cx.Out.Write(string(blob))
		return nil
	}
	if err := os.WriteFile(target, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	cx.Out.Success(fmt.Sprintf("Configuration written to %s", target))
	return nil
}

func replCommand() Command {
	return Handle(Definition{
		Name:    "shell",
		Aliases: []string{"repl"},
		Short:   "Run commands interactively, one per line.",
		Long: `Read command lines and run each one as if it was given on the command
line. Quoting follows shell rules. Leave with "exit", "quit" or end of
input (Ctrl+D).`,
	}, runShell)
}

func runShell(cx *Context) error {
	shell := cx.Shell()
	if shell.nested {
		return usage("already running inside %s shell", shell.name)
	}
	shell.nested = true
	defer func() {
		shell.nested = false
	}()

	session := sessionFlags(cx)
	cx.Out.Comment(`Type "exit" or press Ctrl+D to leave.`)
	for {
		cx.Out.Write(shell.name + "> ")
		line, err := shell.stream.ReadLine()
		if errors.Is(err, io.EOF) {
			cx.Out.WriteLine("")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command line: %w", err)
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		argv, err := shlex.Split(line)
		if err != nil {
			cx.Out.Error(fmt.Sprintf("Cannot parse %q: %v", line, err))
			continue
		}
		args := append(append([]string{}, session...), argv...)
		if code := shell.Run(args); code != ExitOK {
			cx.Out.Comment(fmt.Sprintf("exit status %d", code))
		}
	}
}

// sessionFlags returns the persistent flags given to the shell command itself
// as "--name=value" arguments, so every line runs with them. Flags on a line
// come later and win.
func sessionFlags(cx *Context) []string {
	result := []string{}
	cx.command.Root().PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			result = append(result, fmt.Sprintf("--%s=%s", flag.Name, flag.Value.String()))
		}
	})
	return result
}
