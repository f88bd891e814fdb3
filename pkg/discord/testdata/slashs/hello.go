package hello

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

var Slash = discord.SlashOptions{
	Name:        "hello",
	Description: "Says hello",
	Category:    "fun",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Who to greet",
		},
	},
	Run: func(ctx *discord.SlashContext) error {
		return ctx.Reply("Hello " + ctx.StringOption("name"))
	},
}
