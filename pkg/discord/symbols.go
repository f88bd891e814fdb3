package discord

import (
	"go/constant"
	"reflect"

	"github.com/traefik/yaegi/interp"
)

//go:generate yaegi extract -name discord github.com/bwmarrin/discordgo
//go:generate mv github_com-bwmarrin-discordgo.go discordgo_symbols.go

// packagePath is the import path handler sources use for this package.
const packagePath = "github.com/igecorp/igego/pkg/discord"

func untypedString(s string) reflect.Value {
	return reflect.ValueOf(constant.MakeString(s))
}

// Symbols is the table handed to the interpreter. Keys follow the yaegi
// "importpath/pkgname" convention. The discordgo entries are generated into
// discordgo_symbols.go.
var Symbols = interp.Exports{
	packagePath + "/discord": {
		"Bool":      reflect.ValueOf(Bool),
		"EventName": reflect.ValueOf(EventName),

		"PermissionEveryone": untypedString(PermissionEveryone),
		"PermissionOwner":    untypedString(PermissionOwner),

		"AutoCompleteFunc": reflect.ValueOf((*AutoCompleteFunc)(nil)),
		"Client":           reflect.ValueOf((*Client)(nil)),
		"Command":          reflect.ValueOf((*Command)(nil)),
		"CommandOptions":   reflect.ValueOf((*CommandOptions)(nil)),
		"CommandRunFunc":   reflect.ValueOf((*CommandRunFunc)(nil)),
		"EventListener":    reflect.ValueOf((*EventListener)(nil)),
		"MessageContext":   reflect.ValueOf((*MessageContext)(nil)),
		"Policy":           reflect.ValueOf((*Policy)(nil)),
		"Slash":            reflect.ValueOf((*Slash)(nil)),
		"SlashContext":     reflect.ValueOf((*SlashContext)(nil)),
		"SlashOptions":     reflect.ValueOf((*SlashOptions)(nil)),
		"SlashRunFunc":     reflect.ValueOf((*SlashRunFunc)(nil)),
	},
}
