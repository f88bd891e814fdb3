package about

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{
	Name:     "about",
	Category: "info",
	Usage:    []string{"about"},
}
