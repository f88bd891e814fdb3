package ping

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{
	Name:     "ping",
	Category: "utils",
	Usage:    []string{"ping"},
}
