package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/command"
	"flightdeck/internal/discord"
	"flightdeck/internal/reply"
	"flightdeck/internal/version"
)

// AboutCommand shows what this bot is and how it was built.
type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "About " + version.AppName }

func (c *AboutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *AboutCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		} else {
			buildDate = version.BuildDate
		}
	}

	goVer := strings.TrimPrefix(version.GoVersion, "go")
	if goVer == "" {
		goVer = "unknown"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "ℹ️ About " + version.AppName,
		Description: version.AppDescription,
		Color:       reply.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Flight data",
				Value: "[AviationStack](https://aviationstack.com)",
			},
			{
				Name:  "Release",
				Value: buildDate + " (Go " + goVer + ")",
			},
		},
	}
	return discord.RespondEmbed(slash.Session, slash.Event, embed)
}
