package main

import (
	"os"

	"github.com/joshyorko/clikit/cmd"
	"github.com/joshyorko/clikit/common"
)

func main() {
	shell, err := cmd.NewShell()
	if err != nil {
		common.Fatal("startup", err)
		os.Exit(1)
	}
	os.Exit(shell.Run(os.Args[1:]))
}
