package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type overwriteCall struct {
	appID   string
	guildID string
	names   []string
}

type fakeRegistrar struct {
	overwrites []overwriteCall
	deleted    []string
	existing   []*discordgo.ApplicationCommand
	err        error
}

func (f *fakeRegistrar) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	call := overwriteCall{appID: appID, guildID: guildID, names: []string{}}
	for _, cmd := range commands {
		call.names = append(call.names, cmd.Name)
	}
	f.overwrites = append(f.overwrites, call)
	return commands, f.err
}

func (f *fakeRegistrar) ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return f.existing, f.err
}

func (f *fakeRegistrar) ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, cmdID)
	return nil
}

func registrationClient(t *testing.T) (*Client, *fakeRegistrar) {
	t.Helper()
	c := newTestClient(t)
	fake := &fakeRegistrar{}
	c.registrar = fake

	for _, opts := range []SlashOptions{
		{Name: "hello", Description: "Says hello"},
		{Name: "purge", Description: "Deletes messages", GuildOnly: true},
		{Name: "stats", Description: "Shows stats"},
	} {
		slash, err := NewSlash(opts)
		require.NoError(t, err)
		c.Slashs.Set(slash.Name, slash)
	}
	return c, fake
}

func markReady(t *testing.T, c *Client) {
	t.Helper()
	c.Session.State.User = &discordgo.User{ID: "app"}
	c.setReady(true)
}

func TestRegisterSlashsRequiresReady(t *testing.T) {
	c, fake := registrationClient(t)

	err := c.RegisterSlashs(context.Background())
	assert.ErrorIs(t, err, ErrClientNotReady)
	assert.Empty(t, fake.overwrites)
}

func TestRegisterSlashsRequiresGuild(t *testing.T) {
	c, fake := registrationClient(t)
	markReady(t, c)

	err := c.RegisterSlashs(context.Background())
	assert.ErrorIs(t, err, ErrGuildNotFound)
	assert.Empty(t, fake.overwrites)
}

func TestRegisterSlashsPartitions(t *testing.T) {
	c, fake := registrationClient(t)
	markReady(t, c)
	require.NoError(t, c.Session.State.GuildAdd(&discordgo.Guild{ID: "guild"}))

	require.NoError(t, c.RegisterSlashs(context.Background()))

	require.Len(t, fake.overwrites, 2)
	assert.Equal(t, overwriteCall{appID: "app", guildID: "", names: []string{"hello", "stats"}}, fake.overwrites[0])
	assert.Equal(t, overwriteCall{appID: "app", guildID: "guild", names: []string{"purge"}}, fake.overwrites[1])
}

func TestRegisterSlashsEmptyPartitionStillOverwrites(t *testing.T) {
	c, fake := registrationClient(t)
	c.Slashs.Delete("purge")
	markReady(t, c)
	require.NoError(t, c.Session.State.GuildAdd(&discordgo.Guild{ID: "guild"}))

	require.NoError(t, c.RegisterSlashs(context.Background()))

	require.Len(t, fake.overwrites, 2)
	assert.Empty(t, fake.overwrites[1].names)
}

func TestRegisterSlashsWrapsRESTErrors(t *testing.T) {
	c, fake := registrationClient(t)
	fake.err = errors.New("401 unauthorized")
	markReady(t, c)
	require.NoError(t, c.Session.State.GuildAdd(&discordgo.Guild{ID: "guild"}))

	err := c.RegisterSlashs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fake.err)
	assert.Len(t, fake.overwrites, 1)
}

func TestClearCommands(t *testing.T) {
	c, fake := registrationClient(t)
	fake.existing = []*discordgo.ApplicationCommand{{ID: "1", Name: "old"}, {ID: "2", Name: "older"}}

	_, err := c.ClearCommands(context.Background(), "")
	assert.ErrorIs(t, err, ErrClientNotReady)

	markReady(t, c)
	removed, err := c.ClearCommands(context.Background(), "guild")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"1", "2"}, fake.deleted)
}

func TestFindCommandByAlias(t *testing.T) {
	c := newTestClient(t)
	cmd, err := NewCommand(CommandOptions{Name: "help", Category: "utils", Aliases: []string{"h"}, Usage: []string{"help"}})
	require.NoError(t, err)
	c.Commands.Set(cmd.Name, cmd)

	found, ok := c.FindCommand("H")
	require.True(t, ok)
	assert.Same(t, cmd, found)

	_, ok = c.FindCommand("nope")
	assert.False(t, ok)
}
