package discord

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/logger"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func loggedMessages(hook *logtest.Hook) []string {
	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func TestParamsRequiresDirectories(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Params(context.Background(), LoadOptions{EventsDir: "testdata/events"})
	assert.ErrorIs(t, err, ErrMissingSlashDir)

	_, err = c.Params(context.Background(), LoadOptions{SlashsDir: "testdata/slashs"})
	assert.ErrorIs(t, err, ErrMissingEventDir)

	assert.Zero(t, c.Slashs.Size())
	assert.Zero(t, c.Events.Size())
}

func TestParamsLoadsEveryStage(t *testing.T) {
	c := newTestClient(t)
	hook := logtest.NewLocal(logger.Get().Logrus())

	summary, err := c.Params(context.Background(), LoadOptions{
		CommandsDir: "testdata/commands",
		SlashsDir:   "testdata/slashs",
		EventsDir:   "testdata/events",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Commands.Loaded)
	assert.Equal(t, 2, summary.Commands.Total)
	require.Len(t, summary.Commands.Failures, 1)
	assert.Equal(t, "broken", summary.Commands.Failures[0].Name)
	assert.Error(t, summary.Err())
	assert.False(t, summary.Database)

	ping, ok := c.Commands.Get("ping")
	require.True(t, ok)
	assert.Equal(t, "utils", ping.Category)
	assert.True(t, ping.Matches("p"))
	assert.NotNil(t, ping.Run)
	assert.Equal(t, 1, c.Commands.Size())

	assert.Equal(t, []string{"hello", "purge"}, c.Slashs.Names())
	_, inCommands := c.Commands.Get("hello")
	assert.False(t, inCommands)

	purge, _ := c.Slashs.Get("purge")
	assert.True(t, purge.GuildOnly)
	assert.Equal(t, int64(discordgo.PermissionManageMessages), purge.UserPermissions)

	assert.Equal(t, []string{"ready"}, c.Events.Names())
	ready := &discordgo.Ready{}
	c.Events.Dispatch(ready)
	assert.Equal(t, 10, ready.Version)

	msgs := loggedMessages(hook)
	assert.Contains(t, msgs, "Loaded 1/2 commands.")
	assert.Contains(t, msgs, "Loaded 2/2 slash commands.")
	assert.Contains(t, msgs, "Loaded 1/1 events.")
}

func TestParamsSkipsOptionalStages(t *testing.T) {
	c := newTestClient(t)

	summary, err := c.Params(context.Background(), LoadOptions{
		SlashsDir: "testdata/slashs",
		EventsDir: "testdata/events",
	})
	require.NoError(t, err)

	assert.True(t, summary.Commands.Skipped)
	assert.Equal(t, "Skipped commands.", summary.Commands.String())
	assert.Zero(t, c.Commands.Size())
	assert.NoError(t, summary.Err())
}

func TestLoadCommandsInFolders(t *testing.T) {
	c := newTestClient(t)

	summary, err := c.Params(context.Background(), LoadOptions{
		CommandsDir:   "testdata/grouped",
		SlashsDir:     "testdata/slashs",
		EventsDir:     "testdata/events",
		CmdsInFolders: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Commands.Total)
	assert.Equal(t, []string{"about", "ping"}, c.Commands.Names())
}

func TestLoadCountsOnlyEligibleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.go"), `package good

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{Name: "good", Category: "misc", Usage: []string{"good"}}
`)
	writeFile(t, filepath.Join(dir, "nousage.go"), `package nousage

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{Name: "nousage", Category: "misc"}
`)
	writeFile(t, filepath.Join(dir, "nosymbol.go"), "package nosymbol\n\nvar Other = 1\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "# notes")
	writeFile(t, filepath.Join(dir, "nested", "skipped.go"), "package skipped\n")

	c := newTestClient(t)
	report := c.LoadCommands(context.Background(), dir)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Loaded)
	assert.Len(t, report.Failures, 2)
	assert.ErrorIs(t, report.Err(), ErrMissingCommandUsage)
	assert.Equal(t, []string{"good"}, c.Commands.Names())
}

func TestLoadMissingDirectory(t *testing.T) {
	c := newTestClient(t)

	report := c.LoadSlashs(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Zero(t, report.Total)
	assert.Error(t, report.Err())
}

const readyHandler = `package ready

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

func Handler(c *discord.Client, evt interface{}) {
	evt.(*discordgo.Ready).Version = %d
}
`

func TestEventReloadReadsCurrentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ready.go")
	c := newTestClient(t)

	writeFile(t, path, fmt.Sprintf(readyHandler, 1))
	report := c.LoadEvents(context.Background(), dir)
	require.NoError(t, report.Err())

	first := &discordgo.Ready{}
	c.Events.Dispatch(first)
	assert.Equal(t, 1, first.Version)

	writeFile(t, path, fmt.Sprintf(readyHandler, 2))
	report = c.LoadEvents(context.Background(), dir)
	require.NoError(t, report.Err())

	second := &discordgo.Ready{}
	assert.Equal(t, 1, c.Events.Dispatch(second))
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, 1, c.Events.Size())
}

func TestEventNamesFollowFilenames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "MESSAGE_CREATE.go"), `package messagecreate

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

func Handler(c *discord.Client, evt interface{}) {
	m := evt.(*discordgo.MessageCreate)
	m.Content = "seen by " + c.Prefix
}
`)
	c := newTestClient(t)
	require.NoError(t, c.LoadEvents(context.Background(), dir).Err())

	evt := &discordgo.MessageCreate{Message: &discordgo.Message{}}
	c.Events.Dispatch(evt)
	assert.Equal(t, "seen by !", evt.Content)
}

func TestReload(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Reload(context.Background())
	assert.ErrorIs(t, err, ErrNotLoaded)

	dir := t.TempDir()
	cmds := filepath.Join(dir, "commands")
	writeFile(t, filepath.Join(cmds, "one.go"), `package one

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{Name: "one", Category: "misc", Usage: []string{"one"}}
`)

	opts := LoadOptions{CommandsDir: cmds, SlashsDir: "testdata/slashs", EventsDir: "testdata/events"}
	_, err = c.Params(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, c.Commands.Names())

	require.NoError(t, os.Remove(filepath.Join(cmds, "one.go")))
	writeFile(t, filepath.Join(cmds, "two.go"), `package two

import "github.com/igecorp/igego/pkg/discord"

var Command = discord.CommandOptions{Name: "two", Category: "misc", Usage: []string{"two"}}
`)

	summary, err := c.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Commands.Loaded)
	assert.Equal(t, []string{"two"}, c.Commands.Names())
	assert.Equal(t, 1, c.Events.Size())
}

func TestParamsCancelledContext(t *testing.T) {
	c := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := c.Params(ctx, LoadOptions{
		CommandsDir: "testdata/commands",
		SlashsDir:   "testdata/slashs",
		EventsDir:   "testdata/events",
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Commands.Loaded)
	assert.Zero(t, c.Commands.Size())
}

const guildEventHandler = `package %s

import (
	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

func Handler(c *discord.Client, evt interface{}) {
	evt.(*discordgo.%s).GuildID = "seen"
}
`

func TestLoadEventsForEveryIntent(t *testing.T) {
	channel := &discordgo.ChannelCreate{Channel: &discordgo.Channel{}}
	thread := &discordgo.ThreadCreate{Channel: &discordgo.Channel{}}
	role := &discordgo.GuildRoleCreate{GuildRole: &discordgo.GuildRole{}}
	scheduled := &discordgo.GuildScheduledEventCreate{GuildScheduledEvent: &discordgo.GuildScheduledEvent{}}
	member := &discordgo.GuildMemberUpdate{Member: &discordgo.Member{}}
	ban := &discordgo.GuildBanAdd{}
	emojis := &discordgo.GuildEmojisUpdate{}
	integrations := &discordgo.GuildIntegrationsUpdate{}
	webhooks := &discordgo.WebhooksUpdate{}
	invite := &discordgo.InviteCreate{Invite: &discordgo.Invite{}}
	voice := &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{}}
	presence := &discordgo.PresenceUpdate{}
	message := &discordgo.MessageCreate{Message: &discordgo.Message{}}
	reaction := &discordgo.MessageReactionAdd{MessageReaction: &discordgo.MessageReaction{}}
	typing := &discordgo.TypingStart{}

	tests := []struct {
		intent string
		file   string
		evt    interface{}
		guild  func() string
	}{
		{"guilds", "channelCreate", channel, func() string { return channel.GuildID }},
		{"guilds", "threadCreate", thread, func() string { return thread.GuildID }},
		{"guilds", "guildRoleCreate", role, func() string { return role.GuildID }},
		{"guilds", "guildScheduledEventCreate", scheduled, func() string { return scheduled.GuildID }},
		{"guild members", "guildMemberUpdate", member, func() string { return member.GuildID }},
		{"guild bans", "guildBanAdd", ban, func() string { return ban.GuildID }},
		{"guild emojis", "guildEmojisUpdate", emojis, func() string { return emojis.GuildID }},
		{"guild integrations", "guildIntegrationsUpdate", integrations, func() string { return integrations.GuildID }},
		{"guild webhooks", "webhooksUpdate", webhooks, func() string { return webhooks.GuildID }},
		{"guild invites", "inviteCreate", invite, func() string { return invite.GuildID }},
		{"guild voice states", "voiceStateUpdate", voice, func() string { return voice.GuildID }},
		{"guild presences", "presenceUpdate", presence, func() string { return presence.GuildID }},
		{"guild messages", "messageCreate", message, func() string { return message.GuildID }},
		{"guild message reactions", "messageReactionAdd", reaction, func() string { return reaction.GuildID }},
		{"guild message typing", "typingStart", typing, func() string { return typing.GuildID }},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		typeName := strings.ToUpper(tt.file[:1]) + tt.file[1:]
		writeFile(t, filepath.Join(dir, tt.file+".go"), fmt.Sprintf(guildEventHandler, strings.ToLower(tt.file), typeName))
	}

	c := newTestClient(t)
	report := c.LoadEvents(context.Background(), dir)
	require.NoError(t, report.Err())
	assert.Equal(t, len(tests), report.Total)
	assert.Equal(t, len(tests), report.Loaded)

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, 1, c.Events.Dispatch(tt.evt), tt.intent)
			assert.Equal(t, "seen", tt.guild(), tt.intent)
		})
	}
}

func TestLoadSlashWithEveryOptionType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "roll.go"), `package roll

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/discord"
)

var minimum = 0.5

var Slash = discord.SlashOptions{
	Name:        "roll",
	Description: "Rolls a weighted die",
	Category:    "fun",
	Options: []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionNumber, Name: "weight", Description: "Weight", MinValue: &minimum},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "sides", Description: "Sides"},
		{Type: discordgo.ApplicationCommandOptionBoolean, Name: "secret", Description: "Hide the result"},
		{Type: discordgo.ApplicationCommandOptionUser, Name: "for", Description: "Roll for someone"},
		{Type: discordgo.ApplicationCommandOptionChannel, Name: "in", Description: "Channel", ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText}},
		{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "Role"},
		{Type: discordgo.ApplicationCommandOptionMentionable, Name: "ping", Description: "Mention"},
		{Type: discordgo.ApplicationCommandOptionAttachment, Name: "table", Description: "Custom table"},
	},
	Run: func(ctx *discord.SlashContext) error {
		weight := ctx.Option("weight").FloatValue()
		if ctx.BoolOption("secret") {
			return ctx.ReplyEphemeral(fmt.Sprintf("%.1f", weight))
		}
		return ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: []*discordgo.MessageEmbedField{{Name: "weight", Value: fmt.Sprintf("%.1f", weight)}},
		})
	},
}
`)

	c := newTestClient(t)
	report := c.LoadSlashs(context.Background(), dir)
	require.NoError(t, report.Err())
	assert.Equal(t, 1, report.Loaded)

	roll, ok := c.Slashs.Get("roll")
	require.True(t, ok)
	require.Len(t, roll.Options, 8)
	assert.Equal(t, discordgo.ApplicationCommandOptionNumber, roll.Options[0].Type)
	require.NotNil(t, roll.Options[0].MinValue)
	assert.Equal(t, 0.5, *roll.Options[0].MinValue)
	assert.Equal(t, discordgo.ApplicationCommandOptionAttachment, roll.Options[7].Type)
	assert.Equal(t, []discordgo.ChannelType{discordgo.ChannelTypeGuildText}, roll.Options[4].ChannelTypes)
	assert.NotNil(t, roll.Run)
}

func TestEventNameStopsAtFirstDot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ready.old.go"), fmt.Sprintf(readyHandler, 3))

	c := newTestClient(t)
	require.NoError(t, c.LoadEvents(context.Background(), dir).Err())
	assert.Equal(t, []string{"ready"}, c.Events.Names())

	ready := &discordgo.Ready{}
	assert.Equal(t, 1, c.Events.Dispatch(ready))
	assert.Equal(t, 3, ready.Version)
}

func TestNewImporterExtension(t *testing.T) {
	assert.Equal(t, ".so", NewImporter(true).Extension())
	assert.Equal(t, ".go", NewImporter(false).Extension())
}

// stubImporter serves fixed symbols keyed by file name.
type stubImporter struct {
	ext     string
	symbols map[string]interface{}
}

func (s *stubImporter) Extension() string { return s.ext }

func (s *stubImporter) Import(path string) (*Module, error) {
	sym, ok := s.symbols[filepath.Base(path)]
	return &Module{Path: path, lookup: func(name string) (interface{}, error) {
		if !ok {
			return nil, fmt.Errorf("symbol %s not found", name)
		}
		return sym, nil
	}}, nil
}

func (s *stubImporter) Invalidate(string) {}
func (s *stubImporter) InvalidateAll()    {}

func TestParamsCompiledCountsOnlyPlugins(t *testing.T) {
	root := t.TempDir()
	cmds, slashs, events := filepath.Join(root, "commands"), filepath.Join(root, "slashs"), filepath.Join(root, "events")
	for _, name := range []string{"ping.so", "about.so", "ping.go", "README.txt"} {
		writeFile(t, filepath.Join(cmds, name), "")
	}
	for _, name := range []string{"hello.so", "hello.go"} {
		writeFile(t, filepath.Join(slashs, name), "")
	}
	for _, name := range []string{"ready.so", "ready.go", "ready.so.txt"} {
		writeFile(t, filepath.Join(events, name), "")
	}

	var version int
	var onReady EventListener = func(_ *Client, evt interface{}) { version = evt.(*discordgo.Ready).Version }
	stub := &stubImporter{ext: ".so", symbols: map[string]interface{}{
		"ping.so":  &CommandOptions{Name: "ping", Category: "utils", Usage: []string{"ping"}},
		"about.so": CommandOptions{Name: "about", Category: "info", Usage: []string{"about"}},
		"hello.so": &SlashOptions{Name: "hello", Description: "Says hello"},
		"ready.so": &onReady,
	}}

	c := newTestClient(t)
	c.mu.Lock()
	c.importer = stub
	c.lastLoad = &LoadOptions{Compiled: true}
	c.mu.Unlock()

	summary, err := c.Params(context.Background(), LoadOptions{
		CommandsDir: cmds,
		SlashsDir:   slashs,
		EventsDir:   events,
		Compiled:    true,
	})
	require.NoError(t, err)
	require.NoError(t, summary.Err())
	assert.Same(t, stub, c.Importer())

	assert.Equal(t, 2, summary.Commands.Total)
	assert.Equal(t, 1, summary.Slashs.Total)
	assert.Equal(t, 1, summary.Events.Total)
	assert.Equal(t, []string{"about", "ping"}, c.Commands.Names())
	assert.Equal(t, []string{"hello"}, c.Slashs.Names())

	c.Events.Dispatch(&discordgo.Ready{Version: 9})
	assert.Equal(t, 9, version)
}

func TestSymbolConversions(t *testing.T) {
	cmd := CommandOptions{Name: "ping"}
	var nilCmd *CommandOptions

	cmdTests := []struct {
		name    string
		sym     interface{}
		wantErr bool
	}{
		{"value", cmd, false},
		{"pointer", &cmd, false},
		{"nil pointer", nilCmd, true},
		{"nil", nil, true},
		{"wrong type", SlashOptions{Name: "ping"}, true},
	}
	for _, tt := range cmdTests {
		t.Run("command "+tt.name, func(t *testing.T) {
			got, err := commandOptionsOf(tt.sym)
			if tt.wantErr {
				assert.ErrorContains(t, err, "want discord.CommandOptions")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ping", got.Name)
		})
	}

	slash := SlashOptions{Name: "hello"}
	var nilSlash *SlashOptions

	slashTests := []struct {
		name    string
		sym     interface{}
		wantErr bool
	}{
		{"value", slash, false},
		{"pointer", &slash, false},
		{"nil pointer", nilSlash, true},
		{"nil", nil, true},
		{"wrong type", &cmd, true},
	}
	for _, tt := range slashTests {
		t.Run("slash "+tt.name, func(t *testing.T) {
			got, err := slashOptionsOf(tt.sym)
			if tt.wantErr {
				assert.ErrorContains(t, err, "want discord.SlashOptions")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hello", got.Name)
		})
	}

	calls := 0
	fn := func(*Client, interface{}) { calls++ }
	listener := EventListener(fn)
	var nilFn func(*Client, interface{})
	var nilListener EventListener
	var nilListenerPtr *EventListener

	listenerTests := []struct {
		name    string
		sym     interface{}
		wantErr bool
	}{
		{"func", fn, false},
		{"listener", listener, false},
		{"listener pointer", &listener, false},
		{"nil func", nilFn, true},
		{"nil listener", nilListener, true},
		{"nil listener pointer", nilListenerPtr, true},
		{"pointer to nil listener", &nilListener, true},
		{"nil", nil, true},
		{"wrong signature", func(interface{}) {}, true},
	}
	for _, tt := range listenerTests {
		t.Run("listener "+tt.name, func(t *testing.T) {
			got, err := listenerOf(tt.sym)
			if tt.wantErr {
				assert.ErrorContains(t, err, "want func(*discord.Client, interface{})")
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			before := calls
			got(nil, nil)
			assert.Equal(t, before+1, calls)
		})
	}
}
