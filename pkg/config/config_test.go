package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("PREFIX", "?")
	t.Setenv("OWNERS", "1,2,3")
	t.Setenv("PORT", "3001")
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CMDS_IN_FOLDERS", "true")

	resetForTesting()

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", config.BotToken)
	assert.Equal(t, "?", config.Prefix)
	assert.Equal(t, []string{"1", "2", "3"}, config.Owners)
	assert.Equal(t, "3001", config.Port)
	assert.Equal(t, "test", config.Environment)
	assert.True(t, config.CmdsInFolders)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("REPLIES", "maybe")

	resetForTesting()

	_, err := Load()
	assert.Error(t, err)
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	t.Setenv("ENVIRONMENT", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	t.Setenv("ENVIRONMENT", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}
}

func TestGet(t *testing.T) {
	resetForTesting()

	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	for _, key := range []string{"COMMANDS_DIR", "SLASHS_DIR", "EVENTS_DIR", "DB_NAME", "MQTT_PORT", "PORT", "ENVIRONMENT", "AUTO_REGISTER", "MQTT_HOST"} {
		t.Setenv(key, "")
	}

	resetForTesting()
	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "commands", config.CommandsDir)
	assert.Equal(t, "slashs", config.SlashsDir)
	assert.Equal(t, "events", config.EventsDir)
	assert.Equal(t, "ige", config.DBName)
	assert.Equal(t, "1883", config.MQTTPort)
	assert.Equal(t, "3000", config.Port)
	assert.Equal(t, "dev", config.Environment)
	assert.True(t, config.AutoRegister)
	assert.False(t, config.MQTTEnabled())
}

func TestDiscordOptions(t *testing.T) {
	t.Setenv("PREFIX", "!")
	t.Setenv("OWNER", "10")
	t.Setenv("OWNERS", "11,12")
	t.Setenv("TEST_GUILD_ID", "20")
	t.Setenv("REPLIES", "true")
	t.Setenv("COMMANDS_DIR", "cmds")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("COMPILED", "true")

	resetForTesting()
	config, err := Load()
	require.NoError(t, err)

	client := config.ClientOptions()
	assert.Equal(t, "!", client.Prefix)
	assert.Equal(t, "10", client.Owner)
	assert.Equal(t, []string{"11", "12"}, client.Owners)
	assert.Equal(t, "20", client.TestGuildID)
	assert.True(t, client.Replies)

	load := config.LoadOptions()
	assert.Equal(t, "cmds", load.CommandsDir)
	assert.Equal(t, "mongodb://localhost:27017", load.MongoURI)
	assert.True(t, load.Compiled)
}
