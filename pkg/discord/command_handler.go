package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/igecorp/igego/pkg/errors"
	"github.com/igecorp/igego/pkg/logger"
)

// FindCommand resolves a text command by name or alias.
func (c *Client) FindCommand(name string) (*Command, bool) {
	name = strings.ToLower(name)
	if cmd, ok := c.Commands.Get(name); ok {
		return cmd, true
	}
	return c.Commands.Find(func(cmd *Command) bool { return cmd.Matches(name) })
}

// parseCommand splits a prefixed message into the invoked name and its args.
func (c *Client) parseCommand(content string) (string, []string, bool) {
	if c.Prefix == "" || !strings.HasPrefix(content, c.Prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, c.Prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

func (c *Client) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	name, args, ok := c.parseCommand(m.Content)
	if !ok {
		return
	}
	cmd, ok := c.FindCommand(name)
	if !ok || cmd.Run == nil {
		return
	}
	if m.Author.Bot && !cmd.BotAllowed {
		return
	}

	ctx := &MessageContext{
		Session: s,
		Message: m,
		Client:  c,
		Policy:  c.Policy,
		Name:    name,
		Args:    args,
	}

	var perms int64
	if cmd.Permission != PermissionEveryone && cmd.Permission != PermissionOwner {
		perms = c.memberPermissions(s, m)
	}
	if !c.Policy.Allows(cmd.Permission, m.Author.ID, perms) {
		if _, err := ctx.Reply("You do not have permission to use this command."); err != nil {
			logger.Warn("Could not send permission notice: "+err.Error(), "Commands")
		}
		return
	}

	err := apperrors.Recover("command "+cmd.Name, func() error {
		return cmd.Run(ctx)
	})
	if err != nil {
		logger.Error("Error executing command "+cmd.Name+": "+err.Error(), "Commands")
	}
}

// memberPermissions resolves the author's channel permissions from state,
// falling back to REST. Zero means no permission could be resolved.
func (c *Client) memberPermissions(s *discordgo.Session, m *discordgo.MessageCreate) int64 {
	if m.GuildID == "" {
		return 0
	}
	if s.State != nil {
		if perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID); err == nil {
			return perms
		}
	}
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		logger.Debug("Could not resolve permissions: "+err.Error(), "Commands")
		return 0
	}
	return perms
}

func (c *Client) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand && i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	data := i.ApplicationCommandData()
	slash, ok := c.Slashs.Get(data.Name)
	if !ok {
		logger.Warn("Slash command not found: "+data.Name, "Commands")
		return
	}

	ctx := &SlashContext{
		Session:     s,
		Interaction: i,
		Client:      c,
		Policy:      c.Policy,
		Slash:       slash,
	}

	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		if slash.AutoComplete == nil {
			return
		}
		err := apperrors.Recover("autocomplete "+slash.Name, func() error {
			slash.AutoComplete(ctx)
			return nil
		})
		if err != nil {
			logger.Error(err.Error(), "Commands")
		}
		return
	}

	if slash.Run == nil {
		return
	}
	if slash.GuildOnly && i.GuildID == "" {
		if err := ctx.ReplyEphemeral("This command can only be used in a server."); err != nil {
			logger.Warn("Could not send guild-only notice: "+err.Error(), "Commands")
		}
		return
	}

	err := apperrors.Recover("slash "+slash.Name, func() error {
		return slash.Run(ctx)
	})
	if err != nil {
		logger.Error("Error executing slash command "+slash.Name+": "+err.Error(), "Commands")
	}
}

func (c *Client) applicationID() string {
	if c.Session == nil || c.Session.State == nil || c.Session.State.User == nil {
		return ""
	}
	return c.Session.State.User.ID
}

// partitionSlashs splits the registry into global and test-guild payloads.
func (c *Client) partitionSlashs() (global, guild []*discordgo.ApplicationCommand) {
	global = make([]*discordgo.ApplicationCommand, 0)
	guild = make([]*discordgo.ApplicationCommand, 0)
	for _, name := range c.Slashs.Names() {
		slash, ok := c.Slashs.Get(name)
		if !ok {
			continue
		}
		if slash.GuildOnly {
			guild = append(guild, slash.ToApplicationCommand())
		} else {
			global = append(global, slash.ToApplicationCommand())
		}
	}
	return global, guild
}

// RegisterSlashs replaces the registered slash commands with the registry
// contents: one bulk overwrite for global commands, then one for the test
// guild. Nothing is sent unless the client is ready and the test guild is
// known to the session.
func (c *Client) RegisterSlashs(ctx context.Context) error {
	if !c.IsReady() {
		return ErrClientNotReady
	}
	appID := c.applicationID()
	if appID == "" {
		return ErrClientNotReady
	}
	if _, err := c.Session.State.Guild(c.TestGuildID); err != nil {
		return fmt.Errorf("%w: %s", ErrGuildNotFound, c.TestGuildID)
	}

	global, guild := c.partitionSlashs()

	logger.Info(fmt.Sprintf("Registering %d global slash commands...", len(global)), "Commands")
	if _, err := c.registrar.ApplicationCommandBulkOverwrite(appID, "", global, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("register global slash commands: %w", err)
	}

	logger.Info(fmt.Sprintf("Registering %d slash commands in guild %s...", len(guild), c.TestGuildID), "Commands")
	if _, err := c.registrar.ApplicationCommandBulkOverwrite(appID, c.TestGuildID, guild, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("register guild slash commands: %w", err)
	}

	logger.Success("Slash commands registered.", "Commands")
	return nil
}

// ListCommands returns the commands registered for guildID ("" for global).
func (c *Client) ListCommands(ctx context.Context, guildID string) ([]*discordgo.ApplicationCommand, error) {
	appID := c.applicationID()
	if appID == "" {
		return nil, ErrClientNotReady
	}
	return c.registrar.ApplicationCommands(appID, guildID, discordgo.WithContext(ctx))
}

// ClearCommands deletes every command registered for guildID ("" for
// global) and returns how many were removed.
func (c *Client) ClearCommands(ctx context.Context, guildID string) (int, error) {
	cmds, err := c.ListCommands(ctx, guildID)
	if err != nil {
		return 0, err
	}
	appID := c.applicationID()

	removed := 0
	for _, cmd := range cmds {
		if err := c.registrar.ApplicationCommandDelete(appID, guildID, cmd.ID, discordgo.WithContext(ctx)); err != nil {
			logger.Error("Error deleting command "+cmd.Name+": "+err.Error(), "Commands")
			continue
		}
		removed++
	}
	return removed, nil
}
