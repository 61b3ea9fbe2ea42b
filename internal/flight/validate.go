// Package flight validates and normalizes raw user input into canonical
// flight identifiers. Constructing one of these types IS the validation
// gate: no backend call is made with anything that did not pass here.
package flight

import (
	"regexp"
	"strings"
	"unicode"

	"flightdeck/internal/errors"
)

var (
	designatorRe = regexp.MustCompile(`^([A-Z]{2,3})([0-9]{1,4})$`)
	freeFormRe   = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)
	airlineRe    = regexp.MustCompile(`^[A-Z]{2,3}$`)
	airportRe    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Designator is a split flight identifier: IATA airline code plus flight
// number, e.g. {BA 234} for "BA234".
type Designator struct {
	Airline string
	Number  string
}

func (d Designator) String() string { return d.Airline + d.Number }

// stripSpace removes every whitespace rune, including internal ones, so
// "BA 234" and " ba 234 " normalize identically.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ParseDesignator normalizes raw input (whitespace stripped, uppercased) and
// splits it into airline code and flight number.
func ParseDesignator(raw string) (Designator, error) {
	normalized := strings.ToUpper(stripSpace(raw))
	m := designatorRe.FindStringSubmatch(normalized)
	if m == nil {
		return Designator{}, errors.NewInvalidInput("flight",
			"expected an airline code followed by a flight number, like `BA234` or `DLH4`")
	}
	return Designator{Airline: m[1], Number: m[2]}, nil
}

// ParseFlightNumber validates the free-form flight number option used when
// airline and number are not pre-split. Looser than ParseDesignator.
func ParseFlightNumber(raw string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !freeFormRe.MatchString(normalized) {
		return "", errors.NewInvalidInput("flight",
			"expected 2-8 letters and digits, like `BA234`")
	}
	return normalized, nil
}

// ParseAirlineCode validates a 2-3 letter IATA airline code.
func ParseAirlineCode(raw string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !airlineRe.MatchString(normalized) {
		return "", errors.NewInvalidInput("airline",
			"expected a 2-3 letter IATA airline code, like `BA` or `DLH`")
	}
	return normalized, nil
}

// ParseAirportCode validates a 3 letter IATA airport code.
func ParseAirportCode(raw string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !airportRe.MatchString(normalized) {
		return "", errors.NewInvalidInput("airport",
			"expected a 3 letter IATA airport code, like `LHR`")
	}
	return normalized, nil
}

// LookupQuery is a validated multi-field flight search. At least one field
// is always populated; empty fields were simply not provided.
type LookupQuery struct {
	Flight  string
	Airline string
	Airport string
}

// NewLookupQuery validates each provided field and requires at least one of
// them. All-empty input is a validation failure, not a backend call.
func NewLookupQuery(flightRaw, airlineRaw, airportRaw string) (LookupQuery, error) {
	var q LookupQuery
	var err error

	if strings.TrimSpace(flightRaw) != "" {
		if q.Flight, err = ParseFlightNumber(flightRaw); err != nil {
			return LookupQuery{}, err
		}
	}
	if strings.TrimSpace(airlineRaw) != "" {
		if q.Airline, err = ParseAirlineCode(airlineRaw); err != nil {
			return LookupQuery{}, err
		}
	}
	if strings.TrimSpace(airportRaw) != "" {
		if q.Airport, err = ParseAirportCode(airportRaw); err != nil {
			return LookupQuery{}, err
		}
	}

	if q.Flight == "" && q.Airline == "" && q.Airport == "" {
		return LookupQuery{}, errors.NewInvalidInput("query",
			"provide at least one of flight, airline or airport")
	}
	return q, nil
}
