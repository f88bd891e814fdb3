package ready

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

func Handler(c *discord.Client, evt interface{}) {
	r := evt.(*discordgo.Ready)
	r.Version = 10
}
