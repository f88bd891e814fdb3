package discord

import "github.com/bwmarrin/discordgo"

// SlashRunFunc is the function type for slash command execution
type SlashRunFunc func(ctx *SlashContext) error

// AutoCompleteFunc is the function type for autocomplete handling
type AutoCompleteFunc func(ctx *SlashContext)

// SlashOptions describes a slash command. Name and Description are required.
type SlashOptions struct {
	Name        string
	Description string
	Category    string
	// Type defaults to discordgo.ChatApplicationCommand.
	Type    discordgo.ApplicationCommandType
	Options []*discordgo.ApplicationCommandOption
	// DefaultPermission defaults to true when nil.
	DefaultPermission *bool
	// UserPermissions restricts the command to members holding these bits
	// and forces DefaultPermission to false.
	UserPermissions          int64
	GuildOnly                bool
	NameLocalizations        map[discordgo.Locale]string
	DescriptionLocalizations map[discordgo.Locale]string
	Run                      SlashRunFunc
	AutoComplete             AutoCompleteFunc
}

// Slash represents a validated slash command
type Slash struct {
	Name                     string
	Description              string
	Category                 string
	Type                     discordgo.ApplicationCommandType
	Options                  []*discordgo.ApplicationCommandOption
	DefaultPermission        bool
	UserPermissions          int64
	GuildOnly                bool
	NameLocalizations        map[discordgo.Locale]string
	DescriptionLocalizations map[discordgo.Locale]string
	Run                      SlashRunFunc
	AutoComplete             AutoCompleteFunc
}

// Bool returns a pointer to b, for optional descriptor fields.
func Bool(b bool) *bool {
	return &b
}

// NewSlash validates opts and applies defaults.
func NewSlash(opts SlashOptions) (*Slash, error) {
	if opts.Name == "" {
		return nil, ErrMissingSlashName
	}
	if opts.Description == "" {
		return nil, ErrMissingSlashDescription
	}

	s := &Slash{
		Name:                     opts.Name,
		Description:              opts.Description,
		Category:                 opts.Category,
		Type:                     opts.Type,
		Options:                  opts.Options,
		DefaultPermission:        true,
		UserPermissions:          opts.UserPermissions,
		GuildOnly:                opts.GuildOnly,
		NameLocalizations:        opts.NameLocalizations,
		DescriptionLocalizations: opts.DescriptionLocalizations,
		Run:                      opts.Run,
		AutoComplete:             opts.AutoComplete,
	}
	if s.Type == 0 {
		s.Type = discordgo.ChatApplicationCommand
	}
	if opts.DefaultPermission != nil {
		s.DefaultPermission = *opts.DefaultPermission
	}
	if s.UserPermissions != 0 {
		s.DefaultPermission = false
	}
	return s, nil
}

// ToApplicationCommand converts the slash command to the REST payload.
// Context menu commands (user and message types) carry no description.
func (s *Slash) ToApplicationCommand() *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Type:              s.Type,
		Name:              s.Name,
		DefaultPermission: Bool(s.DefaultPermission),
		Options:           s.Options,
	}

	if s.Type == discordgo.ChatApplicationCommand {
		cmd.Description = s.Description
		if len(s.DescriptionLocalizations) > 0 {
			loc := s.DescriptionLocalizations
			cmd.DescriptionLocalizations = &loc
		}
	}
	if len(s.NameLocalizations) > 0 {
		loc := s.NameLocalizations
		cmd.NameLocalizations = &loc
	}
	if s.UserPermissions != 0 {
		perms := s.UserPermissions
		cmd.DefaultMemberPermissions = &perms
	}
	return cmd
}
