package cmd

import (
	"errors"
	"fmt"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/pretty"
)

var (
	ErrCancelled = errors.New("deployment cancelled")

	deploySteps = []string{"build", "upload", "migrate", "verify"}
	stages      = []string{"dev", "test", "prod"}
)

func init() {
	register(app.Handle(app.Definition{
		Name:  "deploy",
		Short: "Deploy a service to a stage.",
		Long: `Deploy a service to a stage (dev, test or prod). Production deployments
ask for confirmation unless --yes is given.`,
		Arguments: []app.Argument{
			{Name: "service", Required: true, Description: "Service to deploy."},
			{Name: "stage", Default: "dev", Description: "Target stage."},
		},
		Options: []app.Flag{
			{Name: "yes", Shortcut: "y", Boolean: true, Description: "Do not ask for confirmation."},
		},
	}, deploy))
}

func knownStage(stage string) bool {
	for _, candidate := range stages {
		if candidate == stage {
			return true
		}
	}
	return false
}

func deploy(cx *app.Context) error {
	service, stage := cx.Argument("service"), cx.Argument("stage")
	if !knownStage(stage) {
		return app.Exit(app.ExitUsage, fmt.Errorf("unknown stage %q, expected one of %v", stage, stages))
	}
	if stage == "prod" && !cx.BoolOption("yes") {
		if !cx.Input.Confirm(fmt.Sprintf("Deploy %s to production?", service), false) {
			cx.Out.Warning("Deployment cancelled.")
			return ErrCancelled
		}
	}

	bar := pretty.NewProgressBar(cx.Out, fmt.Sprintf("Deploying %s to %s", service, stage), int64(len(deploySteps)))
	bar.Start()
	for at, step := range deploySteps {
		bar.Set(int64(at+1), fmt.Sprintf("Deploying %s to %s: %s", service, stage, step))
	}
	bar.Set(int64(len(deploySteps)), fmt.Sprintf("Deployed %s to %s", service, stage))
	bar.Finish(true)
	cx.Out.Verbose(fmt.Sprintf("Steps: %v", deploySteps))
	return nil
}
