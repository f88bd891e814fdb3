package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Permission sentinels understood by Policy.
const (
	PermissionEveryone = "everyone"
	PermissionOwner    = "owner"
)

// permissionBits maps the permission names accepted in command descriptors
// to Discord permission flags.
var permissionBits = map[string]int64{
	"administrator":    discordgo.PermissionAdministrator,
	"manage_guild":     discordgo.PermissionManageGuild,
	"manage_channels":  discordgo.PermissionManageChannels,
	"manage_roles":     discordgo.PermissionManageRoles,
	"manage_messages":  discordgo.PermissionManageMessages,
	"kick_members":     discordgo.PermissionKickMembers,
	"ban_members":      discordgo.PermissionBanMembers,
	"moderate_members": discordgo.PermissionModerateMembers,
	"mention_everyone": discordgo.PermissionMentionEveryone,
}

// Policy decides who may run a command. It is shared by the client and the
// handler contexts so handlers never read owner state off the client.
type Policy struct {
	owners map[string]struct{}
}

// NewPolicy builds a Policy from the main owner and any extra owners.
func NewPolicy(owner string, owners ...string) *Policy {
	p := &Policy{owners: make(map[string]struct{}, len(owners)+1)}
	if owner != "" {
		p.owners[owner] = struct{}{}
	}
	for _, id := range owners {
		if id != "" {
			p.owners[id] = struct{}{}
		}
	}
	return p
}

// IsOwner reports whether userID is one of the configured owners.
func (p *Policy) IsOwner(userID string) bool {
	_, ok := p.owners[userID]
	return ok
}

// Owners returns the configured owner IDs.
func (p *Policy) Owners() []string {
	ids := make([]string, 0, len(p.owners))
	for id := range p.owners {
		ids = append(ids, id)
	}
	return ids
}

// Allows reports whether a user holding perms may run a command requiring
// permission. Owners pass every check; unknown permission names deny.
func (p *Policy) Allows(permission, userID string, perms int64) bool {
	permission = strings.ToLower(strings.TrimSpace(permission))

	switch permission {
	case "", PermissionEveryone:
		return true
	}
	if p.IsOwner(userID) {
		return true
	}
	if permission == PermissionOwner {
		return false
	}

	bit, ok := permissionBits[permission]
	if !ok {
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0 || perms&bit == bit
}
