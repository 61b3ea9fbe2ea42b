package links

import (
	"fmt"
	"strings"

	"flightdeck/internal/flight"
)

// Provider is one flight-tracking site link for a specific flight.
type Provider struct {
	Name string
	URL  string
}

type site struct {
	name     string
	template string // one %s verb, receives the designator
	lower    bool   // site wants the designator lowercased in the path
}

// Tracking sites in display order. The first entry is the primary tracker
// and is surfaced most prominently in replies.
var sites = []site{
	{name: "RadarBox", template: "https://www.radarbox.com/data/flights/%s"},
	{name: "Flightradar24", template: "https://www.flightradar24.com/data/flights/%s", lower: true},
	{name: "FlightAware", template: "https://www.flightaware.com/live/flight/%s"},
	{name: "Avionio", template: "https://www.avionio.com/en/flight/%s", lower: true},
	{name: "Plane Finder", template: "https://planefinder.net/flight/%s"},
}

// Count is the number of providers Generate returns.
const Count = 5

// Generate builds one tracking link per provider for the given flight.
// The set, order and casing are fixed.
func Generate(d flight.Designator) []Provider {
	out := make([]Provider, 0, len(sites))
	for _, s := range sites {
		code := d.String()
		if s.lower {
			code = strings.ToLower(code)
		}
		out = append(out, Provider{Name: s.name, URL: fmt.Sprintf(s.template, code)})
	}
	return out
}

// Primary returns the link for the main tracker, the first entry of Generate.
func Primary(d flight.Designator) Provider {
	return Generate(d)[0]
}
