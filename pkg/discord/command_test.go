package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandDefaults(t *testing.T) {
	cmd, err := NewCommand(CommandOptions{
		Name:     "ping",
		Category: "utils",
		Usage:    []string{"ping"},
	})
	require.NoError(t, err)

	assert.Equal(t, PermissionEveryone, cmd.Permission)
	assert.False(t, cmd.BotAllowed)
	assert.Nil(t, cmd.Run)
}

func TestNewCommandRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		opts CommandOptions
		want error
	}{
		{"missing name", CommandOptions{Category: "utils", Usage: []string{"x"}}, ErrMissingCommandName},
		{"missing category", CommandOptions{Name: "x", Usage: []string{"x"}}, ErrMissingCommandCategory},
		{"missing usage", CommandOptions{Name: "x", Category: "utils"}, ErrMissingCommandUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewCommand(tt.opts)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, cmd)
		})
	}
}

func TestCommandMatches(t *testing.T) {
	cmd, err := NewCommand(CommandOptions{
		Name:     "help",
		Category: "utils",
		Aliases:  []string{"h", "ayuda"},
		Usage:    []string{"help [command]"},
	})
	require.NoError(t, err)

	assert.True(t, cmd.Matches("help"))
	assert.True(t, cmd.Matches("HELP"))
	assert.True(t, cmd.Matches("ayuda"))
	assert.False(t, cmd.Matches("hel"))
}

func TestNewSlashDefaults(t *testing.T) {
	slash, err := NewSlash(SlashOptions{Name: "hello", Description: "Says hello"})
	require.NoError(t, err)

	assert.Equal(t, discordgo.ChatApplicationCommand, slash.Type)
	assert.True(t, slash.DefaultPermission)
	assert.False(t, slash.GuildOnly)
}

func TestNewSlashRequiredFields(t *testing.T) {
	_, err := NewSlash(SlashOptions{Description: "no name"})
	assert.ErrorIs(t, err, ErrMissingSlashName)

	_, err = NewSlash(SlashOptions{Name: "nodesc"})
	assert.ErrorIs(t, err, ErrMissingSlashDescription)
}

func TestNewSlashExplicitDefaultPermission(t *testing.T) {
	slash, err := NewSlash(SlashOptions{Name: "x", Description: "x", DefaultPermission: Bool(false)})
	require.NoError(t, err)
	assert.False(t, slash.DefaultPermission)
}

func TestToApplicationCommand(t *testing.T) {
	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Who to greet",
	}
	slash, err := NewSlash(SlashOptions{
		Name:              "hello",
		Description:       "Says hello",
		Options:           []*discordgo.ApplicationCommandOption{option},
		NameLocalizations: map[discordgo.Locale]string{discordgo.SpanishES: "hola"},
	})
	require.NoError(t, err)

	cmd := slash.ToApplicationCommand()
	assert.Equal(t, "hello", cmd.Name)
	assert.Equal(t, "Says hello", cmd.Description)
	assert.Equal(t, discordgo.ChatApplicationCommand, cmd.Type)
	require.NotNil(t, cmd.DefaultPermission)
	assert.True(t, *cmd.DefaultPermission)
	assert.Nil(t, cmd.DefaultMemberPermissions)
	require.Len(t, cmd.Options, 1)
	require.NotNil(t, cmd.NameLocalizations)
	assert.Equal(t, "hola", (*cmd.NameLocalizations)[discordgo.SpanishES])
}

func TestToApplicationCommandUserPermissions(t *testing.T) {
	slash, err := NewSlash(SlashOptions{
		Name:            "purge",
		Description:     "Deletes messages",
		UserPermissions: discordgo.PermissionManageMessages,
	})
	require.NoError(t, err)
	assert.False(t, slash.DefaultPermission)

	cmd := slash.ToApplicationCommand()
	assert.False(t, *cmd.DefaultPermission)
	require.NotNil(t, cmd.DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionManageMessages), *cmd.DefaultMemberPermissions)
}

func TestContextMenuDropsDescription(t *testing.T) {
	slash, err := NewSlash(SlashOptions{
		Name:        "Report",
		Description: "Report this message",
		Type:        discordgo.MessageApplicationCommand,
	})
	require.NoError(t, err)

	cmd := slash.ToApplicationCommand()
	assert.Equal(t, discordgo.MessageApplicationCommand, cmd.Type)
	assert.Empty(t, cmd.Description)
}
