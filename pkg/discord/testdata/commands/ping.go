package ping

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{
	Name:        "ping",
	Category:    "utils",
	Description: "Replies with pong",
	Aliases:     []string{"p"},
	Usage:       []string{"ping"},
	Run: func(ctx *discord.MessageContext) error {
		_, err := ctx.Reply("pong")
		return err
	},
}
