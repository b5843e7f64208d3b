package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/common"
	"github.com/joshyorko/clikit/prompt"
	"gopkg.in/yaml.v2"
)

const (
	manifestName = `project.yaml`
)

var (
	templates = prompt.Pairs(
		"python", "Python task package",
		"standard", "Standard project with tasks and tests",
		"extended", "Extended project with conda environment",
	)
	features = prompt.Pairs(
		"tests", "Unit tests",
		"lint", "Linter configuration",
		"ci", "CI workflow",
		"docs", "Documentation skeleton",
	)
)

type manifest struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Template    string   `yaml:"template"`
	Features    []string `yaml:"features,omitempty"`
}

func init() {
	register(app.Handle(app.Definition{
		Name:    "init",
		Aliases: []string{"create"},
		Short:   "Create a new project interactively.",
		Long: `Ask for project name, template and features, then write a project
manifest into a new directory below the given parent directory.`,
		Arguments: []app.Argument{
			{Name: "directory", Description: "Parent directory.", Default: "."},
		},
		Options: []app.Flag{
			{Name: "force", Shortcut: "f", Boolean: true, Description: "Overwrite an existing manifest."},
		},
	}, initProject))
}

func initProject(cx *app.Context) error {
	cx.Out.Header("Create a new project")
	cx.Out.WriteLine("")

	name, err := cx.Input.AskValid("Project name", "my-project", prompt.Identifier())
	if err != nil {
		return err
	}
	description := cx.Input.Ask("Description", "")
	template, err := cx.Input.PromptChoice("Template:", templates, "python")
	if err != nil {
		return err
	}
	chosen, err := cx.Input.PromptMultiChoice("Features:", features, []string{"tests"})
	if err != nil {
		return err
	}

	target := filepath.Join(common.ExpandPath(cx.Argument("directory")), name)
	cx.Out.Frame("Summary",
		fmt.Sprintf("name:     %s", name),
		fmt.Sprintf("template: %s", template),
		fmt.Sprintf("features: %s", strings.Join(chosen, ", ")),
		fmt.Sprintf("location: %s", target),
	)
	if !cx.Input.Confirm("Create project?", true) {
		cx.Out.Warning("Nothing was created.")
		return nil
	}

	filename := filepath.Join(target, manifestName)
	if _, err := os.Stat(filename); err == nil && !cx.BoolOption("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite", filename)
	}
	blob, err := yaml.Marshal(manifest{Name: name, Description: description, Template: template, Features: chosen})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	if err := os.WriteFile(filename, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	common.Debug("Wrote manifest %s", filename)
	cx.Out.Success(fmt.Sprintf("Project %q created in %s", name, target))
	return nil
}
