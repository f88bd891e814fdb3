package main

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandType(t *testing.T) {
	tests := []struct {
		in   discordgo.ApplicationCommandType
		want string
	}{
		{discordgo.ChatApplicationCommand, "chat"},
		{discordgo.UserApplicationCommand, "user"},
		{discordgo.MessageApplicationCommand, "message"},
		{0, "chat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, commandType(tt.in))
	}
}

func TestCommandLine(t *testing.T) {
	command, err := app.Parse([]string{"list", "--guild=123", "--json", "--timeout=5s"})
	assert.NoError(t, err)
	assert.Equal(t, "list", command)
	assert.Equal(t, "123", *guildID)
	assert.True(t, *listJSON)
	assert.Equal(t, "5s", timeout.String())
}
