package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/igecorp/igego/pkg/database"
	"github.com/igecorp/igego/pkg/logger"
)

// discordgo logs through a package-level function; route it into our logger.
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		switch msgL {
		case discordgo.LogError:
			logger.Error(msg, "DiscordGo")
		case discordgo.LogWarning:
			logger.Warn(msg, "DiscordGo")
		default:
			logger.Debug(msg, "DiscordGo")
		}
	}
}

// commandRegistrar is the slice of the REST API used for slash command
// registration.
type commandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// Client wraps a discordgo session with command registries, an event
// dispatcher and an optional database handle.
type Client struct {
	Session  *discordgo.Session
	Commands *Collection[*Command]
	Slashs   *Collection[*Slash]
	Events   *EventHandler
	Policy   *Policy

	Prefix       string
	TestGuildID  string
	Replies      bool
	AutoRegister bool

	registrar commandRegistrar
	importer  Importer
	lastLoad  *LoadOptions
	db        *database.Database

	mu        sync.RWMutex
	isReady   bool
	startTime time.Time
}

// New validates the options and builds a client. No network call is made;
// use Login to open the gateway connection.
func New(token string, opts *ClientOptions) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = Intents
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning
	applyPartials(session.State)

	c := &Client{
		Session:      session,
		Commands:     NewCollection[*Command](),
		Slashs:       NewCollection[*Slash](),
		Policy:       NewPolicy(opts.Owner, opts.Owners...),
		Prefix:       opts.Prefix,
		TestGuildID:  opts.TestGuildID,
		Replies:      opts.Replies,
		AutoRegister: opts.AutoRegister,
		registrar:    session,
	}
	c.Events = NewEventHandler(c)

	session.AddHandler(c.Events.handle)
	session.AddHandler(c.handleReady)
	session.AddHandler(c.handleMessage)
	session.AddHandler(c.handleInteraction)

	return c, nil
}

// Login opens the gateway connection. Errors are returned as-is.
func (c *Client) Login() error {
	c.mu.Lock()
	c.startTime = time.Now()
	c.mu.Unlock()
	if err := c.Session.Open(); err != nil {
		return err
	}
	return nil
}

// Close closes the gateway connection and the database, if any.
func (c *Client) Close() error {
	c.setReady(false)

	var sessErr error
	if c.Session != nil {
		sessErr = c.Session.Close()
	}
	if db := c.DB(); db != nil {
		if err := db.Disconnect(); err != nil {
			logger.Error("Error disconnecting database: "+err.Error(), "Client")
		}
	}
	return sessErr
}

// IsReady reports whether the Ready event has been received
func (c *Client) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// WaitReady blocks until the Ready event arrives or ctx is done.
func (c *Client) WaitReady(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for !c.IsReady() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (c *Client) setReady(ready bool) {
	c.mu.Lock()
	c.isReady = ready
	c.mu.Unlock()
}

// DB returns the database opened by Params, or nil.
func (c *Client) DB() *database.Database {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

func (c *Client) setDB(db *database.Database) {
	c.mu.Lock()
	c.db = db
	c.mu.Unlock()
}

// AllowedMentions is the mention policy applied to message replies.
func (c *Client) AllowedMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{
		Parse:       []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers, discordgo.AllowedMentionTypeRoles},
		RepliedUser: c.Replies,
	}
}

// GuildCount returns the number of guilds in the session state
func (c *Client) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// Uptime returns the time since Login, or zero before it.
func (c *Client) Uptime() time.Duration {
	c.mu.RLock()
	start := c.startTime
	c.mu.RUnlock()
	if start.IsZero() {
		return 0
	}
	return time.Since(start)
}

func (c *Client) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	c.setReady(true)
	if r.User != nil {
		logger.Success("Logged in as "+r.User.Username, "Client")
	}

	if !c.AutoRegister {
		return
	}
	if err := c.RegisterSlashs(context.Background()); err != nil {
		logger.Error("Slash command registration failed: "+err.Error(), "Client")
	}
}
