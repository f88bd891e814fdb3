package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() *ClientOptions {
	return &ClientOptions{
		Prefix:      "!",
		Owner:       "owner",
		TestGuildID: "guild",
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New("token", testOptions())
	require.NoError(t, err)
	return c
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		token string
		opts  *ClientOptions
		want  error
	}{
		{"missing token", "", testOptions(), ErrMissingToken},
		{"missing options", "token", nil, ErrMissingClientOptions},
		{"missing prefix", "token", &ClientOptions{Owner: "o", TestGuildID: "g"}, ErrMissingPrefix},
		{"missing owner", "token", &ClientOptions{Prefix: "!", TestGuildID: "g"}, ErrMissingOwner},
		{"missing guild", "token", &ClientOptions{Prefix: "!", Owner: "o"}, ErrMissingGuildID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.token, tt.opts)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, c)
		})
	}
}

func TestNewConfiguresSession(t *testing.T) {
	opts := testOptions()
	opts.Owners = []string{"co-owner"}
	opts.Replies = true

	c, err := New("token", opts)
	require.NoError(t, err)

	assert.Equal(t, "Bot token", c.Session.Token)
	assert.Equal(t, Intents, c.Session.Identify.Intents)
	assert.True(t, c.Session.State.TrackMembers)
	assert.True(t, c.Session.State.TrackChannels)
	assert.True(t, c.Session.State.TrackRoles)
	assert.Equal(t, messageCacheSize, c.Session.State.MaxMessageCount)

	assert.Equal(t, "!", c.Prefix)
	assert.Equal(t, "guild", c.TestGuildID)
	assert.True(t, c.Policy.IsOwner("owner"))
	assert.True(t, c.Policy.IsOwner("co-owner"))
	assert.Zero(t, c.Commands.Size())
	assert.Zero(t, c.Slashs.Size())
	assert.False(t, c.IsReady())
	assert.Nil(t, c.DB())
	assert.True(t, c.AllowedMentions().RepliedUser)
}

func TestIntentsIncludeMessagesAndMembers(t *testing.T) {
	assert.NotZero(t, Intents&discordgo.IntentsGuildMessages)
	assert.NotZero(t, Intents&discordgo.IntentsGuildMembers)
	assert.NotZero(t, Intents&discordgo.IntentsDirectMessages)
	assert.NotZero(t, Intents&discordgo.IntentsMessageContent)
	assert.Zero(t, Intents&discordgo.IntentsGuildScheduledEvents)
}

func TestReadyMarksClient(t *testing.T) {
	c := newTestClient(t)

	c.handleReady(c.Session, &discordgo.Ready{User: &discordgo.User{Username: "bot"}})
	assert.True(t, c.IsReady())
}

func messageFrom(authorID, content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		Content:   content,
		Author:    &discordgo.User{ID: authorID, Bot: bot},
	}}
}

func TestMessageRouting(t *testing.T) {
	c := newTestClient(t)

	var got *MessageContext
	cmd, err := NewCommand(CommandOptions{
		Name:     "echo",
		Category: "utils",
		Aliases:  []string{"say"},
		Usage:    []string{"echo <text>"},
		Run: func(ctx *MessageContext) error {
			got = ctx
			return nil
		},
	})
	require.NoError(t, err)
	c.Commands.Set(cmd.Name, cmd)

	c.handleMessage(c.Session, messageFrom("user", "!say hello world", false))
	require.NotNil(t, got)
	assert.Equal(t, "say", got.Name)
	assert.Equal(t, []string{"hello", "world"}, got.Args)
	assert.Same(t, c.Policy, got.Policy)

	got = nil
	c.handleMessage(c.Session, messageFrom("user", "echo no prefix", false))
	assert.Nil(t, got)

	c.handleMessage(c.Session, messageFrom("other-bot", "!echo hi", true))
	assert.Nil(t, got)
}

func TestMessageRoutingOwnerOnly(t *testing.T) {
	c := newTestClient(t)

	ran := false
	cmd, err := NewCommand(CommandOptions{
		Name:       "eval",
		Category:   "dev",
		Usage:      []string{"eval <code>"},
		Permission: PermissionOwner,
		BotAllowed: true,
		Run: func(ctx *MessageContext) error {
			ran = true
			return nil
		},
	})
	require.NoError(t, err)
	c.Commands.Set(cmd.Name, cmd)

	c.handleMessage(c.Session, messageFrom("owner", "!eval 1+1", false))
	assert.True(t, ran)
}

func TestMessageRoutingRecoversPanics(t *testing.T) {
	c := newTestClient(t)

	cmd, err := NewCommand(CommandOptions{
		Name:     "boom",
		Category: "utils",
		Usage:    []string{"boom"},
		Run: func(ctx *MessageContext) error {
			panic("boom")
		},
	})
	require.NoError(t, err)
	c.Commands.Set(cmd.Name, cmd)

	assert.NotPanics(t, func() {
		c.handleMessage(c.Session, messageFrom("user", "!boom", false))
	})
}

type offlineTransport struct{}

func (offlineTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("offline")
}

func TestUptimeWhileLoggingIn(t *testing.T) {
	c := newTestClient(t)
	c.Session.Client = &http.Client{Transport: offlineTransport{}}
	assert.Zero(t, c.Uptime())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = c.Uptime()
		}
	}()

	assert.Error(t, c.Login())
	<-done

	time.Sleep(time.Millisecond)
	assert.Positive(t, c.Uptime())
}

func TestWaitReady(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.WaitReady(ctx), context.DeadlineExceeded)

	go c.setReady(true)
	assert.NoError(t, c.WaitReady(context.Background()))
}

func interactionFor(kind discordgo.InteractionType, name, guildID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i1",
		Type:    kind,
		GuildID: guildID,
		Data:    discordgo.ApplicationCommandInteractionData{Name: name},
	}}
}

func TestInteractionRouting(t *testing.T) {
	c := newTestClient(t)

	var ran, suggested *SlashContext
	slash, err := NewSlash(SlashOptions{
		Name:        "hello",
		Description: "Says hello",
		Run: func(ctx *SlashContext) error {
			ran = ctx
			return nil
		},
		AutoComplete: func(ctx *SlashContext) {
			suggested = ctx
		},
	})
	require.NoError(t, err)
	c.Slashs.Set(slash.Name, slash)

	c.handleInteraction(c.Session, interactionFor(discordgo.InteractionApplicationCommand, "hello", "guild"))
	require.NotNil(t, ran)
	assert.Same(t, slash, ran.Slash)
	assert.Same(t, c, ran.Client)
	assert.Nil(t, suggested)

	c.handleInteraction(c.Session, interactionFor(discordgo.InteractionApplicationCommandAutocomplete, "hello", "guild"))
	assert.NotNil(t, suggested)

	ran = nil
	c.handleInteraction(c.Session, interactionFor(discordgo.InteractionApplicationCommand, "missing", "guild"))
	c.handleInteraction(c.Session, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing}})
	assert.Nil(t, ran)
}

func TestInteractionRoutingRecoversPanics(t *testing.T) {
	c := newTestClient(t)

	slash, err := NewSlash(SlashOptions{
		Name:        "boom",
		Description: "Panics",
		Run: func(ctx *SlashContext) error {
			panic("boom")
		},
	})
	require.NoError(t, err)
	c.Slashs.Set(slash.Name, slash)

	assert.NotPanics(t, func() {
		c.handleInteraction(c.Session, interactionFor(discordgo.InteractionApplicationCommand, "boom", "guild"))
	})
}
