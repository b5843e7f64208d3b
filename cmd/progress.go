package cmd

import (
	"fmt"
	"strconv"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/pretty"
)

func init() {
	register(app.Handle(app.Definition{
		Name:  "progress",
		Short: "Show a progress bar.",
		Arguments: []app.Argument{
			{Name: "steps", Default: "5", Description: "Number of steps."},
		},
		Options: []app.Flag{
			{Name: "fail", Boolean: true, Description: "Finish as failed."},
		},
	}, showProgress))
}

func showProgress(cx *app.Context) error {
	steps, err := strconv.Atoi(cx.Argument("steps"))
	if err != nil || steps < 1 {
		return app.Exit(app.ExitUsage, fmt.Errorf("steps must be a positive number, got %q", cx.Argument("steps")))
	}
	bar := pretty.NewProgressBar(cx.Out, "Working", int64(steps))
	bar.Start()
	for step := 1; step <= steps; step++ {
		bar.Set(int64(step), fmt.Sprintf("Working: step %d of %d", step, steps))
	}
	bar.Finish(!cx.BoolOption("fail"))
	return nil
}
