// Package recon holds the OSINT scan command. Targets are restricted to a
// single trusted tracking site; everything else is refused before any
// process starts.
package recon

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/command"
	"flightdeck/internal/discord"
	"flightdeck/internal/osint"
	"flightdeck/internal/query"
	"flightdeck/internal/reply"
)

// Scanner is the slice of the OSINT runner this command needs.
type Scanner interface {
	Scan(ctx context.Context, target string) query.Result[string]
	Tool() string
}

// ReconCommand runs the configured OSINT tool against an allow-listed
// flight-tracker URL and posts the output.
type ReconCommand struct {
	Runner Scanner
}

func (c *ReconCommand) Name() string        { return "recon" }
func (c *ReconCommand) Description() string { return "Run an OSINT scan against a flight tracker page" }

func (c *ReconCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "Page to scan, must start with " + osint.TrustedURLPrefix,
				Required:    true,
			},
		},
	}
}

func (c *ReconCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	session, event := slash.Session, slash.Event

	raw := ""
	for _, opt := range event.ApplicationCommandData().Options {
		if opt.Name == "url" {
			raw = opt.StringValue()
		}
	}

	target, err := osint.ValidateTargetURL(raw)
	if err != nil {
		return discord.RespondEphemeral(session, event,
			"🛑 Refusing that target. Only URLs under `"+osint.TrustedURLPrefix+"` are scanned.")
	}

	// The tool can run for a while; acknowledge before starting it.
	if err := discord.RespondDeferred(session, event); err != nil {
		return fmt.Errorf("failed to defer reply: %w", err)
	}

	res := c.Runner.Scan(ctx, target)
	embeds := reply.ReconEmbeds(target, res)

	if err := discord.EditResponse(session, event, "", embeds[0]); err != nil {
		return fmt.Errorf("failed to deliver reply: %w", err)
	}
	for _, e := range embeds[1:] {
		if err := discord.FollowupEmbed(session, event, e); err != nil {
			return fmt.Errorf("failed to deliver follow-up: %w", err)
		}
	}
	return nil
}
