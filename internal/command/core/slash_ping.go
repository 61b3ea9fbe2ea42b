package core

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/command"
	"flightdeck/internal/discord"
)

// PingCommand reports gateway latency.
type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Pong!" }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *PingCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	latency := slash.Session.HeartbeatLatency().Milliseconds()
	return discord.Respond(slash.Session, slash.Event,
		fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
}
