package aviationstack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flightdeck/internal/flight"
	"flightdeck/internal/query"
)

// DefaultTimeout bounds every request to the flight data API.
const DefaultTimeout = 10 * time.Second

// resultLimit caps how many records a single lookup returns, both in the
// request and again client-side.
const resultLimit = 5

// Client talks to an AviationStack-compatible flight data API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// New returns a client for the API at baseURL. A non-positive timeout falls
// back to DefaultTimeout.
func New(baseURL, accessKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
	}
}

// envelope is the wire shape of /flights responses. The API reports some
// failures as an error object inside a 200.
type envelope struct {
	Error *apiError `json:"error"`
	Data  []Flight  `json:"data"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Flights looks up records matching q. Exactly one attempt is made and every
// outcome folds into the returned result.
func (c *Client) Flights(ctx context.Context, q flight.LookupQuery) query.Result[Flight] {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("limit", strconv.Itoa(resultLimit))
	if q.Flight != "" {
		params.Set("flight_iata", q.Flight)
	}
	if q.Airline != "" {
		params.Set("airline_iata", q.Airline)
	}
	if q.Airport != "" {
		params.Set("dep_iata", q.Airport)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+params.Encode(), nil)
	if err != nil {
		return query.Fail[Flight](query.Unknown, "build request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return query.Fail[Flight](query.Unreachable, "flight data API unreachable: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return query.Fail[Flight](query.AuthError, "access key rejected: status=%d", resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return query.Empty[Flight]()
	case resp.StatusCode == http.StatusTooManyRequests:
		return query.Fail[Flight](query.RateLimited, "rate limited: status=%d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return query.Fail[Flight](query.HTTPError, "status=%d body=%s", resp.StatusCode, truncate(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return query.Fail[Flight](query.Unknown, "decode response: %v body=%s", err, truncate(body))
	}
	if env.Error != nil {
		return query.Fail[Flight](query.APIError, "%s: %s", env.Error.Code, env.Error.Message)
	}
	if len(env.Data) == 0 {
		return query.Empty[Flight]()
	}
	records := env.Data
	if len(records) > resultLimit {
		records = records[:resultLimit]
	}
	return query.Ok(records)
}

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}
