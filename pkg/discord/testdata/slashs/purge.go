package purge

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

var Slash = discord.SlashOptions{
	Name:            "purge",
	Description:     "Deletes recent messages",
	Category:        "mod",
	GuildOnly:       true,
	UserPermissions: discordgo.PermissionManageMessages,
	Run: func(ctx *discord.SlashContext) error {
		return ctx.ReplyEphemeral("done")
	},
}
