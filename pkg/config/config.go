// Package config provides configuration management for the host binaries.
// It loads a .env file when present and maps environment variables onto Config.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/igecorp/igego/pkg/discord"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	BotToken     string   `env:"BOT_TOKEN"`
	Prefix       string   `env:"PREFIX"`
	Owner        string   `env:"OWNER"`
	Owners       []string `env:"OWNERS" envSeparator:","`
	TestGuildID  string   `env:"TEST_GUILD_ID"`
	Replies      bool     `env:"REPLIES" envDefault:"false"`
	AutoRegister bool     `env:"AUTO_REGISTER" envDefault:"true"`

	// Handler directories
	CommandsDir   string `env:"COMMANDS_DIR" envDefault:"commands"`
	SlashsDir     string `env:"SLASHS_DIR" envDefault:"slashs"`
	EventsDir     string `env:"EVENTS_DIR" envDefault:"events"`
	Compiled      bool   `env:"COMPILED" envDefault:"false"`
	CmdsInFolders bool   `env:"CMDS_IN_FOLDERS" envDefault:"false"`

	// MongoDB
	MongoURI string `env:"MONGO_URI"`
	DBName   string `env:"DB_NAME" envDefault:"ige"`

	// MQTT
	MQTTHost     string `env:"MQTT_HOST"`
	MQTTPort     string `env:"MQTT_PORT" envDefault:"1883"`
	MQTTUser     string `env:"MQTT_USER"`
	MQTTPassword string `env:"MQTT_PASSWORD"`

	// Web Server
	Port string `env:"PORT" envDefault:"3000"`

	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	// Logging
	LogDir       string `env:"LOG_DIR" envDefault:"logs"`
	ErrorWebhook string `env:"ERROR_WEBHOOK"`
	LogsWebhook  string `env:"LOGS_WEBHOOK"`
}

var (
	Version   = "Dev-Local"
	BuildTime = "unknown"
)

// cfg holds the global configuration instance
var (
	cfg     *Config
	cfgErr  error
	cfgOnce sync.Once
)

// resetForTesting resets the configuration for testing purposes.
// This function should only be called from test code.
func resetForTesting() {
	cfg = nil
	cfgErr = nil
	cfgOnce = sync.Once{}
}

// loadConfig performs the actual configuration loading
func loadConfig() {
	// Load .env file if it exists (ignoring error if it doesn't)
	_ = godotenv.Load()

	c := &Config{}
	if err := env.Parse(c); err != nil {
		cfgErr = fmt.Errorf("parse environment: %w", err)
	}
	cfg = c
}

// Load initializes the configuration from environment variables
func Load() (*Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, cfgErr
}

// Get returns the current configuration
func Get() *Config {
	cfgOnce.Do(loadConfig)
	return cfg
}

// IsProd returns true if the environment is production
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// MQTTEnabled reports whether a broker is configured.
func (c *Config) MQTTEnabled() bool {
	return c.MQTTHost != ""
}

// ClientOptions maps the Discord settings onto discord.ClientOptions.
func (c *Config) ClientOptions() *discord.ClientOptions {
	return &discord.ClientOptions{
		Prefix:       c.Prefix,
		Owner:        c.Owner,
		Owners:       c.Owners,
		TestGuildID:  c.TestGuildID,
		Replies:      c.Replies,
		AutoRegister: c.AutoRegister,
	}
}

// LoadOptions maps the handler directories onto discord.LoadOptions.
func (c *Config) LoadOptions() discord.LoadOptions {
	return discord.LoadOptions{
		CommandsDir:   c.CommandsDir,
		SlashsDir:     c.SlashsDir,
		EventsDir:     c.EventsDir,
		MongoURI:      c.MongoURI,
		DBName:        c.DBName,
		Compiled:      c.Compiled,
		CmdsInFolders: c.CmdsInFolders,
	}
}
