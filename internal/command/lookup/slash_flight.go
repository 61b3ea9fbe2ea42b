// Package lookup holds the commands that query the remote flight data API.
package lookup

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/aviationstack"
	"flightdeck/internal/command"
	"flightdeck/internal/discord"
	"flightdeck/internal/flight"
	"flightdeck/internal/query"
	"flightdeck/internal/reply"
)

// Querier is the slice of the flight data client this command needs.
type Querier interface {
	Flights(ctx context.Context, q flight.LookupQuery) query.Result[aviationstack.Flight]
}

// FlightCommand looks up live flight records by designator, airline or
// departure airport.
type FlightCommand struct {
	API Querier
}

func (c *FlightCommand) Name() string { return "flight" }
func (c *FlightCommand) Description() string {
	return "Look up flight status by number, airline or airport"
}

func (c *FlightCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "flight",
				Description: "Flight number, e.g. BA234",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "airline",
				Description: "Airline IATA code, e.g. BA",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "airport",
				Description: "Departure airport IATA code, e.g. LHR",
			},
		},
	}
}

func (c *FlightCommand) Run(ctx context.Context, inv *command.Invocation) error {
	slash, ok := inv.Data.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	session, event := slash.Session, slash.Event

	var flightOpt, airlineOpt, airportOpt string
	for _, opt := range event.ApplicationCommandData().Options {
		switch opt.Name {
		case "flight":
			flightOpt = opt.StringValue()
		case "airline":
			airlineOpt = opt.StringValue()
		case "airport":
			airportOpt = opt.StringValue()
		}
	}

	// Validation failures stay local: reply inline, never hit the API.
	q, err := flight.NewLookupQuery(flightOpt, airlineOpt, airportOpt)
	if err != nil {
		return discord.RespondEphemeral(session, event, "🛑 "+capitalize(err.Error()))
	}

	// The API can take seconds; acknowledge now, edit the answer in later.
	if err := discord.RespondDeferred(session, event); err != nil {
		return fmt.Errorf("failed to defer reply: %w", err)
	}

	res := c.API.Flights(ctx, q)
	embeds := reply.FlightEmbeds(res)

	content := ""
	if res.OK() {
		content = reply.CountPreface(len(res.Records), "flight")
	}
	if err := discord.EditResponse(session, event, content, embeds[0]); err != nil {
		return fmt.Errorf("failed to deliver reply: %w", err)
	}

	// Remaining embeds go out one at a time; each call returns before the
	// next starts, so the order users see matches the record order.
	for _, e := range embeds[1:] {
		if err := discord.FollowupEmbed(session, event, e); err != nil {
			return fmt.Errorf("failed to deliver follow-up: %w", err)
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
