package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshyorko/clikit/app"
	"github.com/joshyorko/clikit/prompt"
)

var (
	ErrNoPassword = errors.New("password must not be empty")

	regions = prompt.Pairs(
		"eu", "Europe",
		"us", "United States",
		"ap", "Asia Pacific",
	)
)

func init() {
	register(app.Handle(app.Definition{
		Name:  "login",
		Short: "Log in with a username and password.",
		Long: `Ask for username, password and region. The password is read with
terminal echo switched off and is never printed.`,
		Arguments: []app.Argument{
			{Name: "user", Description: "Username, asked for when missing."},
		},
		Options: []app.Flag{
			{Name: "region", Shortcut: "r", Description: "Region key, asked for when missing."},
		},
	}, login))
}

func login(cx *app.Context) error {
	user := cx.Argument("user")
	if user == "" {
		answer, err := cx.Input.AskValid("Username", "", prompt.NotEmpty())
		if err != nil {
			return err
		}
		user = answer
	}
	secret := cx.Input.PromptSecret("Password: ")
	if secret == "" {
		return ErrNoPassword
	}
	region := cx.Option("region")
	if region == "" {
		answer, err := cx.Input.PromptChoice("Region:", regions, "eu")
		if err != nil {
			return err
		}
		region = answer
	}
	cx.Out.Verbose(fmt.Sprintf("Password: %s", strings.Repeat("*", len(secret))))
	cx.Out.Success(fmt.Sprintf("Logged in as %s (%s).", user, region))
	return nil
}
