package discord

import "errors"

// Configuration errors returned by New and Params.
var (
	ErrMissingToken         = errors.New("missing discord bot token")
	ErrMissingClientOptions = errors.New("missing discord bot options")
	ErrMissingPrefix        = errors.New("missing client default prefix")
	ErrMissingOwner         = errors.New("missing client owner id")
	ErrMissingGuildID       = errors.New("missing client test guild id")

	ErrMissingSlashDir = errors.New("missing slash command directory")
	ErrMissingEventDir = errors.New("missing event directory")
)

// Descriptor validation errors.
var (
	ErrMissingCommandName     = errors.New("missing command name")
	ErrMissingCommandCategory = errors.New("missing command category")
	ErrMissingCommandUsage    = errors.New("missing command usage")

	ErrMissingSlashName        = errors.New("missing slash command name")
	ErrMissingSlashDescription = errors.New("missing slash command description")
)

// Registration errors.
var (
	ErrClientNotReady = errors.New("client is not ready")
	ErrGuildNotFound  = errors.New("test guild not found")
)
