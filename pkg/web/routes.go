package web

import (
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/status", s.statusHandler)
		api.GET("/commands", s.commandsHandler)
		api.GET("/slashs", s.slashsHandler)
		api.GET("/events", s.eventsHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// statusHandler reports gateway, database and registry state
func (s *Server) statusHandler(c *gin.Context) {
	dbStatus, dbOnline := s.client.DB().Status(c.Request.Context())

	bot := gin.H{
		"isOnline": s.client.IsReady(),
		"guilds":   s.client.GuildCount(),
		"uptime":   s.client.Uptime().Round(time.Second).String(),
	}
	if s.client.IsReady() {
		bot["latency"] = s.client.Session.HeartbeatLatency().String()
		if user := s.client.Session.State.User; user != nil {
			bot["id"] = user.ID
			bot["username"] = user.Username
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot":    bot,
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"commands": s.client.Commands.Size(),
		"slashs":   s.client.Slashs.Size(),
		"events":   s.client.Events.Size(),
	})
}

type commandInfo struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Usage       []string `json:"usage"`
	Permission  string   `json:"permission"`
}

func (s *Server) commandsHandler(c *gin.Context) {
	out := make([]commandInfo, 0, s.client.Commands.Size())
	for _, name := range s.client.Commands.Names() {
		cmd, ok := s.client.Commands.Get(name)
		if !ok {
			continue
		}
		out = append(out, commandInfo{
			Name:        cmd.Name,
			Category:    cmd.Category,
			Description: cmd.Description,
			Aliases:     cmd.Aliases,
			Usage:       cmd.Usage,
			Permission:  cmd.Permission,
		})
	}
	c.JSON(http.StatusOK, out)
}

type slashInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type"`
	GuildOnly   bool   `json:"guildOnly"`
}

func slashType(t discordgo.ApplicationCommandType) string {
	switch t {
	case discordgo.UserApplicationCommand:
		return "user"
	case discordgo.MessageApplicationCommand:
		return "message"
	default:
		return "chat"
	}
}

func (s *Server) slashsHandler(c *gin.Context) {
	out := make([]slashInfo, 0, s.client.Slashs.Size())
	for _, name := range s.client.Slashs.Names() {
		slash, ok := s.client.Slashs.Get(name)
		if !ok {
			continue
		}
		out = append(out, slashInfo{
			Name:        slash.Name,
			Description: slash.Description,
			Category:    slash.Category,
			Type:        slashType(slash.Type),
			GuildOnly:   slash.GuildOnly,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) eventsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": s.client.Events.Names()})
}
