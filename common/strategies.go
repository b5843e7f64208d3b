package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultHomeLocation = "$HOME/.config"
)

type (
	// ProductStrategy knows where an application built on clikit keeps its
	// configuration and how its environment variables are named.
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		EnvPrefix() string
		Home() string
		ConfigName() string
		DefaultConfigFile() string
	}

	productStrategy struct {
		name       string
		forcedHome string
	}
)

func Product(name string) ProductStrategy {
	return &productStrategy{name: name}
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

func (it *productStrategy) Name() string {
	return it.name
}

func (it *productStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *productStrategy) EnvPrefix() string {
	return strings.ToUpper(strings.ReplaceAll(it.name, "-", "_"))
}

func (it *productStrategy) HomeVariable() string {
	return fmt.Sprintf("%s_HOME", it.EnvPrefix())
}

func (it *productStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(it.HomeVariable())
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(filepath.Join(defaultHomeLocation, it.name))
}

func (it *productStrategy) ConfigName() string {
	return it.name
}

func (it *productStrategy) DefaultConfigFile() string {
	return filepath.Join(it.Home(), it.name+".yaml")
}
