package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestPolicyOwners(t *testing.T) {
	p := NewPolicy("1", "2", "", "3")

	assert.True(t, p.IsOwner("1"))
	assert.True(t, p.IsOwner("3"))
	assert.False(t, p.IsOwner(""))
	assert.ElementsMatch(t, []string{"1", "2", "3"}, p.Owners())
}

func TestPolicyAllows(t *testing.T) {
	p := NewPolicy("owner")

	tests := []struct {
		name       string
		permission string
		userID     string
		perms      int64
		want       bool
	}{
		{"everyone", PermissionEveryone, "user", 0, true},
		{"empty means everyone", "", "user", 0, true},
		{"owner only denies users", PermissionOwner, "user", discordgo.PermissionAdministrator, false},
		{"owner only allows owner", PermissionOwner, "owner", 0, true},
		{"named permission held", "kick_members", "user", discordgo.PermissionKickMembers, true},
		{"named permission missing", "kick_members", "user", discordgo.PermissionSendMessages, false},
		{"case insensitive", "Manage_Messages", "user", discordgo.PermissionManageMessages, true},
		{"administrator passes", "ban_members", "user", discordgo.PermissionAdministrator, true},
		{"owner bypasses", "ban_members", "owner", 0, true},
		{"unknown name denies", "fly", "user", discordgo.PermissionAdministrator, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Allows(tt.permission, tt.userID, tt.perms))
		})
	}
}
