// Package main is a maintenance tool for registered slash commands.
//
// Usage:
//
//	sync-commands list  [--guild=ID] [--json]
//	sync-commands clean [--guild=ID]
//	sync-commands sync  [--guild=ID]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
	"github.com/igecorp/igego/pkg/config"
	"github.com/igecorp/igego/pkg/discord"
	"github.com/igecorp/igego/pkg/logger"
	"gopkg.in/alecthomas/kingpin.v2"
)

const prefix = "SyncCommands"

var (
	app     = kingpin.New("sync-commands", "Inspect and replace the registered slash commands")
	guildID = app.Flag("guild", "Target guild (empty for global commands, or the test guild for sync)").String()
	timeout = app.Flag("timeout", "How long to wait for the gateway").Default("30s").Duration()

	listCmd  = app.Command("list", "List the registered commands")
	listJSON = listCmd.Flag("json", "Print the commands as JSON").Bool()

	cleanCmd = app.Command("clean", "Delete every registered command")
	syncCmd  = app.Command("sync", "Load the slash directory and overwrite the registered commands")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load()
	if err != nil {
		kingpin.Fatalf("load configuration: %v", err)
	}

	log := logger.Init(logger.Options{Dir: cfg.LogDir})
	defer log.Close()

	opts := cfg.ClientOptions()
	opts.AutoRegister = false
	if command == syncCmd.FullCommand() && *guildID != "" {
		opts.TestGuildID = *guildID
	}

	client, err := discord.New(cfg.BotToken, opts)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), prefix)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if command == syncCmd.FullCommand() {
		load := cfg.LoadOptions()
		load.MongoURI = ""
		summary, err := client.Params(ctx, load)
		if err != nil {
			logger.Critical(fmt.Sprintf("Error loading handlers: %v", err), prefix)
			os.Exit(1)
		}
		if err := summary.Slashs.Err(); err != nil {
			logger.Warn(err.Error(), prefix)
		}
	}

	if err := client.Login(); err != nil {
		logger.Critical(fmt.Sprintf("Error connecting to Discord: %v", err), prefix)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.WaitReady(ctx); err != nil {
		logger.Critical(fmt.Sprintf("Gateway not ready: %v", err), prefix)
		os.Exit(1)
	}

	switch command {
	case listCmd.FullCommand():
		err = list(ctx, client, *guildID, *listJSON)
	case cleanCmd.FullCommand():
		err = clean(ctx, client, *guildID)
	case syncCmd.FullCommand():
		err = client.RegisterSlashs(ctx)
	}
	if err != nil {
		logger.Error(err.Error(), prefix)
		client.Close()
		os.Exit(1)
	}
}

func list(ctx context.Context, client *discord.Client, guild string, asJSON bool) error {
	cmds, err := client.ListCommands(ctx, guild)
	if err != nil {
		return fmt.Errorf("list commands: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(cmds, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	scope := "global"
	if guild != "" {
		scope = "guild " + guild
	}
	fmt.Printf("%d %s commands\n", len(cmds), scope)
	for _, cmd := range cmds {
		fmt.Printf("  %-24s %-8s %s\n", cmd.Name, commandType(cmd.Type), cmd.ID)
	}
	return nil
}

func clean(ctx context.Context, client *discord.Client, guild string) error {
	removed, err := client.ClearCommands(ctx, guild)
	if err != nil {
		return fmt.Errorf("clear commands: %w", err)
	}
	logger.Success(fmt.Sprintf("Removed %d commands.", removed), prefix)
	return nil
}

func commandType(t discordgo.ApplicationCommandType) string {
	switch t {
	case discordgo.UserApplicationCommand:
		return "user"
	case discordgo.MessageApplicationCommand:
		return "message"
	default:
		return "chat"
	}
}
