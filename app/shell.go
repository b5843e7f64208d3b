package app

import (
	"fmt"
	"sort"

	"github.com/joshyorko/clikit/common"
	"github.com/joshyorko/clikit/output"
	"github.com/joshyorko/clikit/pretty"
	"github.com/joshyorko/clikit/prompt"
	"github.com/joshyorko/clikit/stream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	reservedFlags     = []string{"config", "no-color", "verbose", "debug", "trace", "retries", "help", "version"}
	reservedShortcuts = []string{"v", "h"}
)

// Shell owns the session stream and the command registry.
type Shell struct {
	name       string
	version    string
	product    common.ProductStrategy
	stream     stream.Stream
	detect     bool
	console    *output.Console
	input      prompt.Input
	custom     bool
	configFile string
	settings   *viper.Viper
	commands   map[string]Command
	aliases    map[string]string
	nested     bool
}

type Option func(*Shell)

// WithStream replaces the process terminal as the session stream. Terminal
// color detection is skipped for custom streams.
func WithStream(source stream.Stream) Option {
	return func(it *Shell) {
		it.stream = source
	}
}

// WithInput supplies the Input every command receives. Without it commands
// get a Reader over the session stream.
func WithInput(input prompt.Input) Option {
	return func(it *Shell) {
		it.input = input
		it.custom = input != nil
	}
}

func WithConfigFile(filename string) Option {
	return func(it *Shell) {
		it.configFile = filename
	}
}

// WithHome overrides the directory searched for the configuration file.
func WithHome(directory string) Option {
	return func(it *Shell) {
		it.product.ForceHome(directory)
	}
}

func New(name, version string, options ...Option) *Shell {
	it := &Shell{
		name:     name,
		version:  version,
		product:  common.Product(name),
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
	for _, option := range options {
		option(it)
	}
	if it.stream == nil {
		it.stream = stream.Stdio()
		it.detect = true
	}
	it.console = output.NewConsole(it.stream)
	if err := it.Register(configCommand(), replCommand()); err != nil {
		panic(err)
	}
	return it
}

func (it *Shell) Name() string {
	return it.name
}

func (it *Shell) Console() *output.Console {
	return it.console
}

// Register adds commands. Names and aliases must be unique.
func (it *Shell) Register(commands ...Command) error {
	for _, command := range commands {
		definition := command.Definition()
		if err := definition.validate(); err != nil {
			return err
		}
		if err := checkFlags(definition); err != nil {
			return err
		}
		for _, name := range append([]string{definition.Name}, definition.Aliases...) {
			if _, taken := it.Lookup(name); taken {
				return fmt.Errorf("command name %q is already registered", name)
			}
		}
		it.commands[definition.Name] = command
		for _, alias := range definition.Aliases {
			it.aliases[alias] = definition.Name
		}
	}
	return nil
}

func checkFlags(definition Definition) error {
	for _, flag := range definition.Options {
		for _, reserved := range reservedFlags {
			if flag.Name == reserved {
				return fmt.Errorf("command %q: option --%s is reserved", definition.Name, flag.Name)
			}
		}
		for _, reserved := range reservedShortcuts {
			if flag.Shortcut == reserved {
				return fmt.Errorf("command %q: shortcut -%s is reserved", definition.Name, flag.Shortcut)
			}
		}
	}
	return nil
}

// Lookup finds a command by name or alias.
func (it *Shell) Lookup(name string) (Command, bool) {
	if target, ok := it.aliases[name]; ok {
		name = target
	}
	command, ok := it.commands[name]
	return command, ok
}

// Commands returns registered commands ordered by name.
func (it *Shell) Commands() []Command {
	names := make([]string, 0, len(it.commands))
	for name := range it.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	result := make([]Command, 0, len(names))
	for _, name := range names {
		result = append(result, it.commands[name])
	}
	return result
}

// Run parses argv, runs the selected command and returns the exit code.
func (it *Shell) Run(argv []string) int {
	root := it.root()
	root.SetArgs(argv)
	executed, err := root.ExecuteC()
	if err != nil {
		it.report(executed, err)
	}
	return ExitCode(err)
}

func (it *Shell) report(executed *cobra.Command, err error) {
	it.console.Error(err.Error())
	if ExitCode(err) == ExitUsage && executed != nil {
		it.console.Comment(fmt.Sprintf("Run '%s --help' for usage.", executed.CommandPath()))
	}
	common.Debug("Command failed with exit code %d: %v", ExitCode(err), err)
}

func (it *Shell) root() *cobra.Command {
	root := &cobra.Command{
		Use:           it.name,
		Version:       it.version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usage("unknown command %q for %q", args[0], it.name)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return it.prepare(cmd.Root())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(streamWriter{it.stream})
	root.SetErr(streamWriter{it.stream})
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.String("config", "", fmt.Sprintf("config file (default is ./%s.yaml or %s)", it.name, it.product.DefaultConfigFile()))
	flags.Bool("no-color", false, "Do not use colors in output.")
	flags.BoolP("verbose", "v", false, "Show verbose output.")
	flags.Bool("debug", false, "Log debug messages to stderr.")
	flags.Bool("trace", false, "Log trace messages to stderr.")
	flags.Int("retries", prompt.DefaultRetryCeiling, "How many answers a choice prompt accepts before giving up.")

	for _, command := range it.Commands() {
		root.AddCommand(it.cobraCommand(command))
	}
	return root
}

func (it *Shell) prepare(root *cobra.Command) error {
	settings, err := it.loadConfig(root)
	if err != nil {
		return err
	}
	common.DefineVerbosity(false, settings.GetBool(keyDebug), settings.GetBool(keyTrace))
	if it.detect {
		pretty.Setup(settings.GetBool(keyNoColor))
	}
	it.console.SetVerbose(settings.GetBool(keyVerbose))
	if !it.custom {
		it.input = prompt.New(it.stream, prompt.WithSink(it.console), prompt.WithRetryCeiling(settings.GetInt(keyRetries)))
	}
	it.settings = settings
	return nil
}

func (it *Shell) cobraCommand(command Command) *cobra.Command {
	definition := command.Definition()
	cmd := &cobra.Command{
		Use:     definition.use(),
		Aliases: definition.Aliases,
		Short:   definition.Short,
		Long:    definition.Long,
		Hidden:  definition.Hidden,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < definition.required() {
				return usage("missing required argument %q", definition.Arguments[len(args)].Name)
			}
			if len(args) > len(definition.Arguments) {
				return usage("%q accepts at most %d argument(s), received %d", definition.Name, len(definition.Arguments), len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			common.Debug("Running %q with arguments %q", definition.Name, args)
			cx := &Context{
				Name:      definition.Name,
				Input:     it.input,
				Out:       it.console,
				Config:    it.settings,
				shell:     it,
				command:   cmd,
				arguments: definition.bind(args),
			}
			return command.Execute(cx)
		},
	}
	for _, flag := range definition.Options {
		if flag.Boolean {
			cmd.Flags().BoolP(flag.Name, flag.Shortcut, flag.Default == "true", flag.Description)
		} else {
			cmd.Flags().StringP(flag.Name, flag.Shortcut, flag.Default, flag.Description)
		}
	}
	return cmd
}
