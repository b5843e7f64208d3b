package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshyorko/clikit/common"
	"github.com/joshyorko/clikit/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyRetries = `retries`
	keyNoColor = `no_color`
	keyVerbose = `verbose`
	keyDebug   = `debug`
	keyTrace   = `trace`
)

var (
	boundFlags = map[string]string{
		keyRetries: "retries",
		keyNoColor: "no-color",
		keyVerbose: "verbose",
		keyDebug:   "debug",
		keyTrace:   "trace",
	}
)

// loadConfig layers flags over environment over config file over defaults.
// A missing config file is fine unless it was named explicitly.
func (it *Shell) loadConfig(root *cobra.Command) (*viper.Viper, error) {
	settings := viper.New()
	settings.SetDefault(keyRetries, prompt.DefaultRetryCeiling)
	settings.SetDefault(keyNoColor, false)
	settings.SetDefault(keyVerbose, false)
	settings.SetDefault(keyDebug, false)
	settings.SetDefault(keyTrace, false)

	settings.SetEnvPrefix(it.product.EnvPrefix())
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	settings.AutomaticEnv()

	flags := root.PersistentFlags()
	for key, name := range boundFlags {
		if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	filename := it.configFile
	if explicit, _ := flags.GetString("config"); explicit != "" {
		filename = explicit
	}
	if filename != "" {
		settings.SetConfigFile(filename)
	} else {
		settings.SetConfigName(it.product.ConfigName())
		settings.SetConfigType("yaml")
		settings.AddConfigPath(".")
		settings.AddConfigPath(it.product.Home())
	}

	err := settings.ReadInConfig()
	var missing viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		common.Debug("Using configuration file %s", settings.ConfigFileUsed())
	case filename == "" && errors.As(err, &missing):
		common.Trace("No configuration file for %s, using defaults", it.name)
	default:
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return settings, nil
}
