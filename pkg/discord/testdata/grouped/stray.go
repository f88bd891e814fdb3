package stray

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{
	Name:     "stray",
	Category: "misc",
	Usage:    []string{"stray"},
}
