// Package core holds the bot's housekeeping commands: help, ping, about.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/command"
	"flightdeck/internal/discord"
	"flightdeck/internal/reply"
	"flightdeck/internal/version"
)

// HelpCommand lists every registered command.
type HelpCommand struct {
	Registry *command.Registry
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	var sb strings.Builder
	for _, cmd := range c.Registry.All() {
		fmt.Fprintf(&sb, "`/%s` - %s\n", cmd.Name(), cmd.Description())
	}

	embed := &discordgo.MessageEmbed{
		Title:       version.AppName + " Help",
		Description: sb.String(),
		Color:       reply.EmbedColor,
	}
	return discord.RespondEmbedEphemeral(slash.Session, slash.Event, embed)
}
