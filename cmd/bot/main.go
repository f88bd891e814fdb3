// Package main is the entry point of the bot host. It loads the handler
// directories, connects the optional services and logs in to Discord.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/igecorp/igego/pkg/config"
	"github.com/igecorp/igego/pkg/discord"
	"github.com/igecorp/igego/pkg/errors"
	"github.com/igecorp/igego/pkg/logger"
	"github.com/igecorp/igego/pkg/mqtt"
	"github.com/igecorp/igego/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Dir:             cfg.LogDir,
		ErrorWebhookURL: cfg.ErrorWebhook,
		LogsWebhookURL:  cfg.LogsWebhook,
	})
	defer log.Close()

	logger.System(fmt.Sprintf("Starting igego %s (built %s)...", config.Version, config.BuildTime), "Main")

	client, err := discord.New(cfg.BotToken, cfg.ClientOptions())
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	handler := errors.Init(func() {
		select {
		case stop <- syscall.SIGTERM:
		default:
		}
	})
	defer handler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	summary, err := client.Params(ctx, cfg.LoadOptions())
	cancel()
	if err != nil {
		logger.Critical(fmt.Sprintf("Error loading handlers: %v", err), "Main")
		os.Exit(1)
	}
	if err := summary.Err(); err != nil {
		logger.Warn(fmt.Sprintf("Some handlers failed to load: %v", err), "Main")
	}
	logger.Info(fmt.Sprintf("Handlers loaded in %s", summary.Took.Round(time.Millisecond)), "Main")

	if cfg.MQTTEnabled() {
		bridge, err := connectBridge(cfg, client)
		if err != nil {
			logger.Error(fmt.Sprintf("Error connecting to MQTT broker: %v", err), "Main")
		} else {
			defer bridge.Destroy()
			if err := bridge.Notify("load", summary); err != nil {
				logger.Warn("Could not publish load summary: "+err.Error(), "Main")
			}
		}
	}

	server := web.NewServer(client, web.DefaultRateLimit)
	server.StartAsync(cfg.Port)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error stopping web server: "+err.Error(), "Main")
		}
	}()

	if err := client.Login(); err != nil {
		logger.Critical(fmt.Sprintf("Error logging in to Discord: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Discord client: "+err.Error(), "Main")
		}
	}()

	<-stop
	logger.System("Shutting down...", "Main")
}

// connectBridge connects to the broker and answers "reload" requests by
// reloading every handler and, when enabled, registering the slash commands
// again.
func connectBridge(cfg *config.Config, client *discord.Client) (*mqtt.Bridge, error) {
	clientID := "igego"
	if !cfg.IsProd() {
		clientID = "igego_canary"
	}

	bridge, err := mqtt.Connect(mqtt.Options{
		Host:     cfg.MQTTHost,
		Port:     cfg.MQTTPort,
		Username: cfg.MQTTUser,
		Password: cfg.MQTTPassword,
		ClientID: clientID,
	})
	if err != nil {
		return nil, err
	}

	err = bridge.On("reload", func(json.RawMessage) (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		summary, err := client.Reload(ctx)
		if err != nil {
			return nil, err
		}
		if client.AutoRegister && client.IsReady() {
			if err := client.RegisterSlashs(ctx); err != nil {
				return summary, err
			}
		}
		return summary, nil
	})
	if err != nil {
		bridge.Destroy()
		return nil, err
	}
	return bridge, nil
}
