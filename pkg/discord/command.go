// Package discord wraps a discordgo session with text and slash command
// registries, directory-based handler loading and slash command registration.
package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// CommandRunFunc is the function type for text command execution
type CommandRunFunc func(ctx *MessageContext) error

// CommandOptions describes a text command. Name, Category and Usage are
// required.
type CommandOptions struct {
	Name        string
	Category    string
	Description string
	Aliases     []string
	Usage       []string
	Example     []string
	Permission  string
	BotAllowed  bool
	Run         CommandRunFunc
}

// Command represents a validated text command
type Command struct {
	Name        string
	Category    string
	Description string
	Aliases     []string
	Usage       []string
	Example     []string
	Permission  string
	BotAllowed  bool
	Run         CommandRunFunc
}

// NewCommand validates opts and applies defaults: Permission falls back to
// PermissionEveryone and BotAllowed to false.
func NewCommand(opts CommandOptions) (*Command, error) {
	if opts.Name == "" {
		return nil, ErrMissingCommandName
	}
	if opts.Category == "" {
		return nil, ErrMissingCommandCategory
	}
	if len(opts.Usage) == 0 {
		return nil, ErrMissingCommandUsage
	}
	if opts.Permission == "" {
		opts.Permission = PermissionEveryone
	}

	return &Command{
		Name:        opts.Name,
		Category:    opts.Category,
		Description: opts.Description,
		Aliases:     opts.Aliases,
		Usage:       opts.Usage,
		Example:     opts.Example,
		Permission:  opts.Permission,
		BotAllowed:  opts.BotAllowed,
		Run:         opts.Run,
	}, nil
}

// Matches reports whether name is the command name or one of its aliases.
func (c *Command) Matches(name string) bool {
	if strings.EqualFold(c.Name, name) {
		return true
	}
	for _, alias := range c.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// MessageContext provides context for text command execution
type MessageContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Client  *Client
	Policy  *Policy
	// Name is the invoked name (command name or alias).
	Name string
	Args []string
}

// Reply answers the invoking message. Whether the author gets mentioned
// follows the client's Replies setting.
func (ctx *MessageContext) Reply(content string) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSendComplex(ctx.Message.ChannelID, &discordgo.MessageSend{
		Content:         content,
		Reference:       ctx.Message.Reference(),
		AllowedMentions: ctx.Client.AllowedMentions(),
	})
}

// ReplyEmbed answers the invoking message with an embed
func (ctx *MessageContext) ReplyEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSendComplex(ctx.Message.ChannelID, &discordgo.MessageSend{
		Embeds:          []*discordgo.MessageEmbed{embed},
		Reference:       ctx.Message.Reference(),
		AllowedMentions: ctx.Client.AllowedMentions(),
	})
}

// Send posts a message in the invoking channel without replying.
func (ctx *MessageContext) Send(content string) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
}

// Author returns the user who sent the message
func (ctx *MessageContext) Author() *discordgo.User {
	return ctx.Message.Author
}
