package aviationstack

// Endpoint is one airport side of a flight leg. Timestamps arrive as
// RFC 3339 strings and may be empty or malformed; consumers must not
// assume they parse.
type Endpoint struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Delay     int    `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

// Airline identifies the operating carrier.
type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

// Code holds the flight's own identifiers.
type Code struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}

// Aircraft is the airframe, often null in the feed.
type Aircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
}

// Live is the realtime position block, only present for airborne flights.
type Live struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	SpeedHorizontal float64 `json:"speed_horizontal"`
	IsGround        bool    `json:"is_ground"`
}

// Flight is one record from the /flights endpoint.
type Flight struct {
	FlightDate   string    `json:"flight_date"`
	FlightStatus string    `json:"flight_status"`
	Departure    Endpoint  `json:"departure"`
	Arrival      Endpoint  `json:"arrival"`
	Airline      Airline   `json:"airline"`
	Code         Code      `json:"flight"`
	Aircraft     *Aircraft `json:"aircraft"`
	Live         *Live     `json:"live"`
}
