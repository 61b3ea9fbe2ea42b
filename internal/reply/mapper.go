// Package reply turns query results into Discord embeds. It is the only
// place user-facing result formatting happens, so every embed a command
// sends is built here.
package reply

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"flightdeck/internal/aviationstack"
	"flightdeck/internal/flight"
	"flightdeck/internal/links"
	"flightdeck/internal/query"
	"flightdeck/pkg/util"
)

// MaxUnits caps how many embeds a single command reply may produce.
const MaxUnits = 5

const (
	EmbedColor = 0x1e66b0 // accent for regular replies
	errorColor = 0xcc3344
	emptyColor = 0xd9a21b
)

// Discord caps embed descriptions at 4096 chars; leave headroom for the
// fence markers and target line.
const maxFenced = 3500

var statusLabels = map[string]string{
	"scheduled": "🕐 Scheduled",
	"active":    "🛫 En route",
	"landed":    "🛬 Landed",
	"cancelled": "❌ Cancelled",
	"incident":  "⚠️ Incident",
	"diverted":  "↪️ Diverted",
}

// FlightEmbeds renders a flight lookup result as at most MaxUnits embeds,
// one per record. Failures and empty results map to a single embed.
func FlightEmbeds(res query.Result[aviationstack.Flight]) []*discordgo.MessageEmbed {
	if res.Failed() {
		return []*discordgo.MessageEmbed{FailureEmbed(res.Failure)}
	}
	if res.IsEmpty() {
		return []*discordgo.MessageEmbed{EmptyEmbed("No flights matched your query.")}
	}

	records := res.Records
	if len(records) > MaxUnits {
		records = records[:MaxUnits]
	}
	embeds := make([]*discordgo.MessageEmbed, 0, len(records))
	for _, f := range records {
		embeds = append(embeds, flightEmbed(f))
	}
	return embeds
}

func flightEmbed(f aviationstack.Flight) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Airline", Value: airlineLine(f.Airline), Inline: true},
		{Name: "Date", Value: util.FormatTimeTpl(f.FlightDate, "YYYY-MM-DD", "Unknown"), Inline: true},
		{Name: "Aircraft", Value: aircraftLine(f.Aircraft), Inline: true},
		endpointField("Departure", f.Departure),
		endpointField("Arrival", f.Arrival),
	}
	if f.Live != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Live",
			Value:  liveLine(f.Live),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "✈️ " + orNA(f.Code.IATA),
		Description: statusLabel(f.FlightStatus),
		Color:       EmbedColor,
		Fields:      fields,
	}
}

// TrackEmbed lists every tracking provider link for d in one embed, primary
// tracker first and bolded.
func TrackEmbed(d flight.Designator, providers []links.Provider) *discordgo.MessageEmbed {
	var sb strings.Builder
	for i, p := range providers {
		if i == 0 {
			fmt.Fprintf(&sb, "**[%s](%s)**\n", p.Name, p.URL)
			continue
		}
		fmt.Fprintf(&sb, "[%s](%s)\n", p.Name, p.URL)
	}
	return &discordgo.MessageEmbed{
		Title:       "📡 Tracking " + d.String(),
		Description: sb.String(),
		Color:       EmbedColor,
	}
}

// ReconEmbeds renders a scan result. Tool output is fenced and truncated to
// the embed budget.
func ReconEmbeds(target string, res query.Result[string]) []*discordgo.MessageEmbed {
	if res.Failed() {
		return []*discordgo.MessageEmbed{FailureEmbed(res.Failure)}
	}
	if res.IsEmpty() {
		return []*discordgo.MessageEmbed{EmptyEmbed("The scan finished without output.")}
	}

	out := strings.Join(res.Records, "\n")
	return []*discordgo.MessageEmbed{{
		Title:       "🔍 Recon results",
		Description: "Target: " + target + "\n```\n" + truncateTo(out, maxFenced) + "\n```",
		Color:       EmbedColor,
	}}
}

// FailureEmbed renders a backend failure. The wording comes from
// Kind.UserMessage so each kind reads the same everywhere; process output
// is additionally fenced verbatim.
func FailureEmbed(f *query.Failure) *discordgo.MessageEmbed {
	desc := f.Kind.UserMessage()
	if f.Kind == query.ProcessError && f.Message != "" {
		desc += "\n```\n" + truncateTo(f.Message, maxFenced) + "\n```"
	}
	return &discordgo.MessageEmbed{
		Title:       failureTitle(f.Kind),
		Description: desc,
		Color:       errorColor,
	}
}

// EmptyEmbed renders a successful lookup that matched nothing.
func EmptyEmbed(msg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🤷 No results",
		Description: msg,
		Color:       emptyColor,
	}
}

// ErrorEmbed is the catch-all embed for faults that escaped a command.
func ErrorEmbed(msg string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❗ Something went wrong",
		Description: msg,
		Color:       errorColor,
	}
}

// CountPreface phrases how many records a lookup returned.
func CountPreface(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("Found 1 %s.", noun)
	}
	return fmt.Sprintf("Found %d %ss.", n, noun)
}

func failureTitle(k query.Kind) string {
	switch k {
	case query.APIError:
		return "❗ Lookup failed"
	case query.AuthError:
		return "🚫 Access denied"
	case query.RateLimited:
		return "⏳ Rate limited"
	case query.HTTPError:
		return "🌐 Service error"
	case query.Unreachable:
		return "🔌 Service unreachable"
	case query.ProcessError:
		return "⚙️ Scan failed"
	default:
		return "❓ Something went wrong"
	}
}

func statusLabel(status string) string {
	if label, ok := statusLabels[strings.ToLower(strings.TrimSpace(status))]; ok {
		return label
	}
	return "Status unknown"
}

func endpointField(label string, ep aviationstack.Endpoint) *discordgo.MessageEmbedField {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** %s\n", orNA(ep.IATA), orNA(ep.Airport))
	sb.WriteString("Scheduled: " + util.FormatTimeTpl(ep.Scheduled, "YYYY-MM-DD hh:mm", "Unknown"))
	if actual := util.FormatTimeTpl(ep.Actual, "YYYY-MM-DD hh:mm", ""); actual != "" {
		sb.WriteString("\nActual: " + actual)
	}
	if loc := locationLine(ep.Terminal, ep.Gate); loc != "" {
		sb.WriteString("\n" + loc)
	}
	if ep.Delay > 0 {
		fmt.Fprintf(&sb, "\nDelay: %d min", ep.Delay)
	}
	return &discordgo.MessageEmbedField{Name: label, Value: sb.String(), Inline: true}
}

func locationLine(terminal, gate string) string {
	switch {
	case terminal != "" && gate != "":
		return "Terminal " + terminal + ", Gate " + gate
	case terminal != "":
		return "Terminal " + terminal
	case gate != "":
		return "Gate " + gate
	default:
		return ""
	}
}

func airlineLine(a aviationstack.Airline) string {
	if a.Name == "" {
		return orNA(a.IATA)
	}
	if a.IATA == "" {
		return a.Name
	}
	return a.Name + " (" + a.IATA + ")"
}

func aircraftLine(a *aviationstack.Aircraft) string {
	if a == nil {
		return "N/A"
	}
	switch {
	case a.IATA != "" && a.Registration != "":
		return a.IATA + " (" + a.Registration + ")"
	case a.IATA != "":
		return a.IATA
	case a.Registration != "":
		return a.Registration
	default:
		return "N/A"
	}
}

func liveLine(l *aviationstack.Live) string {
	return fmt.Sprintf("Alt %.0f m · %.0f km/h\n%.4f, %.4f", l.Altitude, l.SpeedHorizontal, l.Latitude, l.Longitude)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func truncateTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n… (truncated)"
}
