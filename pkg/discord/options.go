package discord

import "github.com/bwmarrin/discordgo"

// ClientOptions holds the settings validated by New.
type ClientOptions struct {
	// Prefix triggers text commands. Required.
	Prefix string
	// Owner is the main owner user ID. Required.
	Owner string
	// Owners lists additional owner IDs.
	Owners []string
	// TestGuildID receives guild-only slash commands. Required.
	TestGuildID string
	// Replies makes message replies mention the replied user.
	Replies bool
	// AutoRegister pushes slash commands when the Ready event fires.
	AutoRegister bool
}

func (o *ClientOptions) validate() error {
	if o == nil {
		return ErrMissingClientOptions
	}
	if o.Prefix == "" {
		return ErrMissingPrefix
	}
	if o.Owner == "" {
		return ErrMissingOwner
	}
	if o.TestGuildID == "" {
		return ErrMissingGuildID
	}
	return nil
}

// Intents is the fixed gateway intent set requested by every client.
// IntentsMessageContent is privileged and must be enabled for the
// application, otherwise prefix commands never see message text.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildBans |
	discordgo.IntentsGuildEmojis |
	discordgo.IntentsGuildIntegrations |
	discordgo.IntentsGuildWebhooks |
	discordgo.IntentsGuildInvites |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentsGuildPresences |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsGuildMessageTyping |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsDirectMessageReactions |
	discordgo.IntentsDirectMessageTyping |
	discordgo.IntentsMessageContent

// messageCacheSize bounds the per-channel message cache kept in state.
const messageCacheSize = 100

// applyPartials turns on the state tracking every client relies on: users
// and members, channels, messages (and their reactions) and roles.
func applyPartials(state *discordgo.State) {
	state.TrackMembers = true
	state.TrackChannels = true
	state.TrackThreads = true
	state.TrackRoles = true
	state.MaxMessageCount = messageCacheSize
}
