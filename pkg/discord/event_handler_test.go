package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	assert.Equal(t, "messagecreate", EventName(&discordgo.MessageCreate{}))
	assert.Equal(t, "ready", EventName(&discordgo.Ready{}))
	assert.Equal(t, "", EventName(nil))
	assert.Equal(t, normalizeEvent("MESSAGE_CREATE"), normalizeEvent("messageCreate"))
}

func TestDispatchPassesClientFirst(t *testing.T) {
	c := newTestClient(t)

	var gotClient *Client
	var gotEvent interface{}
	c.Events.On("messageCreate", func(client *Client, evt interface{}) {
		gotClient = client
		gotEvent = evt
	})

	evt := &discordgo.MessageCreate{Message: &discordgo.Message{Content: "hi"}}
	assert.Equal(t, 1, c.Events.Dispatch(evt))
	assert.Same(t, c, gotClient)
	assert.Same(t, evt, gotEvent)

	assert.Equal(t, 0, c.Events.Dispatch(&discordgo.Ready{}))
}

func TestBindReplacesListener(t *testing.T) {
	c := newTestClient(t)

	var calls []string
	c.Events.Bind("file:ready.go", "ready", func(*Client, interface{}) { calls = append(calls, "first") })
	c.Events.Bind("file:ready.go", "READY", func(*Client, interface{}) { calls = append(calls, "second") })

	c.Events.Dispatch(&discordgo.Ready{})
	assert.Equal(t, []string{"second"}, calls)
	assert.Equal(t, 1, c.Events.Size())
	assert.Equal(t, []string{"ready"}, c.Events.Names())
}

func TestOnReturnsRemover(t *testing.T) {
	c := newTestClient(t)

	calls := 0
	remove := c.Events.On("guild_create", func(*Client, interface{}) { calls++ })
	c.Events.Dispatch(&discordgo.GuildCreate{})
	remove()
	c.Events.Dispatch(&discordgo.GuildCreate{})

	assert.Equal(t, 1, calls)
	assert.Zero(t, c.Events.Size())
}

func TestDispatchSurvivesPanics(t *testing.T) {
	c := newTestClient(t)

	reached := false
	c.Events.Bind("a", "ready", func(*Client, interface{}) { panic("listener failed") })
	c.Events.Bind("b", "ready", func(*Client, interface{}) { reached = true })

	assert.NotPanics(t, func() { c.Events.Dispatch(&discordgo.Ready{}) })
	assert.True(t, reached)
}
