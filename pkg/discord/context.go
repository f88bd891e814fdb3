package discord

import "github.com/bwmarrin/discordgo"

// SlashContext provides context for slash command and autocomplete execution
type SlashContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Client      *Client
	Policy      *Policy
	Slash       *Slash
}

func (ctx *SlashContext) respond(kind discordgo.InteractionResponseType, data *discordgo.InteractionResponseData) error {
	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: data,
	})
}

// Reply responds to the interaction with a message
func (ctx *SlashContext) Reply(content string) error {
	return ctx.respond(discordgo.InteractionResponseChannelMessageWithSource, &discordgo.InteractionResponseData{
		Content: content,
	})
}

// ReplyEmbed responds with an embed
func (ctx *SlashContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return ctx.respond(discordgo.InteractionResponseChannelMessageWithSource, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

// ReplyEphemeral responds with a message only the invoking user can see
func (ctx *SlashContext) ReplyEphemeral(content string) error {
	return ctx.respond(discordgo.InteractionResponseChannelMessageWithSource, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// Defer acknowledges the interaction; answer later with EditReply.
func (ctx *SlashContext) Defer() error {
	return ctx.respond(discordgo.InteractionResponseDeferredChannelMessageWithSource, nil)
}

// EditReply replaces the content of the original response
func (ctx *SlashContext) EditReply(content string) error {
	_, err := ctx.Session.InteractionResponseEdit(ctx.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// Suggest answers an autocomplete interaction with choices.
func (ctx *SlashContext) Suggest(choices ...*discordgo.ApplicationCommandOptionChoice) error {
	return ctx.respond(discordgo.InteractionApplicationCommandAutocompleteResult, &discordgo.InteractionResponseData{
		Choices: choices,
	})
}

// Option looks up an option by name, descending into subcommands.
func (ctx *SlashContext) Option(name string) *discordgo.ApplicationCommandInteractionDataOption {
	return findOption(ctx.Interaction.ApplicationCommandData().Options, name)
}

// Focused returns the option being autocompleted, if any.
func (ctx *SlashContext) Focused() *discordgo.ApplicationCommandInteractionDataOption {
	var walk func([]*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption
	walk = func(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
		for _, opt := range opts {
			if opt.Focused {
				return opt
			}
			if found := walk(opt.Options); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(ctx.Interaction.ApplicationCommandData().Options)
}

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
		if found := findOption(opt.Options, name); found != nil {
			return found
		}
	}
	return nil
}

// StringOption returns a string option or "" when absent
func (ctx *SlashContext) StringOption(name string) string {
	if opt := ctx.Option(name); opt != nil {
		return opt.StringValue()
	}
	return ""
}

// IntOption returns an integer option or 0 when absent
func (ctx *SlashContext) IntOption(name string) int64 {
	if opt := ctx.Option(name); opt != nil {
		return opt.IntValue()
	}
	return 0
}

// BoolOption returns a boolean option or false when absent
func (ctx *SlashContext) BoolOption(name string) bool {
	if opt := ctx.Option(name); opt != nil {
		return opt.BoolValue()
	}
	return false
}

// UserOption resolves a user option
func (ctx *SlashContext) UserOption(name string) *discordgo.User {
	if opt := ctx.Option(name); opt != nil {
		return opt.UserValue(ctx.Session)
	}
	return nil
}

// User returns the user who triggered the interaction
func (ctx *SlashContext) User() *discordgo.User {
	if ctx.Interaction.Member != nil {
		return ctx.Interaction.Member.User
	}
	return ctx.Interaction.User
}

// Guild returns the cached guild of the interaction, or nil in DMs.
func (ctx *SlashContext) Guild() *discordgo.Guild {
	if ctx.Interaction.GuildID == "" {
		return nil
	}
	guild, _ := ctx.Session.State.Guild(ctx.Interaction.GuildID)
	return guild
}
