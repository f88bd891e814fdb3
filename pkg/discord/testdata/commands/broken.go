package broken

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{
	Name: "broken",
	Usage: []string{"broken"
