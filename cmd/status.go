package cmd

import (
	"fmt"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/pretty"
)

type service struct {
	Name    string
	Stage   string
	Version string
	Status  string
}

var (
	services = []service{
		{"api", "prod", "v2.3.1", "running"},
		{"api", "dev", "v2.4.0-rc1", "running"},
		{"worker", "prod", "v1.9.0", "failed"},
		{"worker", "test", "v1.9.1", "pending"},
		{"web", "prod", "v5.0.2", "complete"},
	}
)

func init() {
	register(app.Handle(app.Definition{
		Name:    "status",
		Aliases: []string{"ls"},
		Short:   "Show service status as a table.",
		Options: []app.Flag{
			{Name: "stage", Shortcut: "s", Description: "Only show this stage."},
		},
	}, status))
}

func status(cx *app.Context) error {
	stage := cx.Option("stage")
	table := pretty.NewTable("Service", "Stage", "Version", "Status")
	table.StatusColumn = 4
	shown := 0
	for _, entry := range services {
		if stage != "" && entry.Stage != stage {
			continue
		}
		table.AddRow(entry.Name, entry.Stage, entry.Version, entry.Status)
		shown += 1
	}
	if shown == 0 {
		cx.Out.Warning(fmt.Sprintf("No services in stage %q.", stage))
		return nil
	}
	cx.Out.Table(table)
	cx.Out.Comment(fmt.Sprintf("%d service(s)", shown))
	return nil
}
