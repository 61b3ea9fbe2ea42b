// Package track holds the tracking-link command. It never talks to any
// backend; links are generated locally from static templates.
package track

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/command"
	"flightdeck/internal/discord"
	"flightdeck/internal/flight"
	"flightdeck/internal/links"
	"flightdeck/internal/reply"
)

// TrackCommand turns a flight designator into tracking links across the
// known radar sites.
type TrackCommand struct{}

func (c *TrackCommand) Name() string        { return "track" }
func (c *TrackCommand) Description() string { return "Get live tracking links for a flight" }

func (c *TrackCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "flight",
				Description: "Flight number, e.g. BA234",
				Required:    true,
			},
		},
	}
}

func (c *TrackCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	session, event := slash.Session, slash.Event

	raw := ""
	for _, opt := range event.ApplicationCommandData().Options {
		if opt.Name == "flight" {
			raw = opt.StringValue()
		}
	}

	d, err := flight.ParseDesignator(raw)
	if err != nil {
		return discord.RespondEphemeral(session, event,
			"🛑 Can't read that flight number. Try something like `BA234` or `LH1`.")
	}

	return discord.RespondEmbed(session, event, reply.TrackEmbed(d, links.Generate(d)))
}
