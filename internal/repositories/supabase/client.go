package supabase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
)

// Client wraps the Supabase REST surface: PostgREST tables, remote
// procedures, GoTrue auth and object storage. All requests authenticate with
// the service-role key; per-user authorization happens in the routers, not
// here.
type Client struct {
	rest       *resty.Client
	baseURL    string
	serviceKey string
}

func New(cfg *config.AppConfig) *Client {
	base := strings.TrimRight(cfg.SupabaseURL, "/")

	rest := resty.New().
		SetBaseURL(base).
		SetHeader("apikey", cfg.SupabaseServiceKey).
		SetHeader("Authorization", "Bearer "+cfg.SupabaseServiceKey).
		SetTimeout(30 * time.Second)

	return &Client{
		rest:       rest,
		baseURL:    base,
		serviceKey: cfg.SupabaseServiceKey,
	}
}

// Error is the discriminated failure half of every gateway result. Routers
// surface Message verbatim to the client.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// upstreamError converts a non-2xx PostgREST/GoTrue/storage response into an
// *Error, preferring the message field of the JSON body when present.
func upstreamError(resp *resty.Response) error {
	var body struct {
		Message  string `json:"message"`
		Msg      string `json:"msg"`
		ErrorMsg string `json:"error"`
	}

	message := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		switch {
		case body.Message != "":
			message = body.Message
		case body.Msg != "":
			message = body.Msg
		case body.ErrorMsg != "":
			message = body.ErrorMsg
		}
	}
	if message == "" {
		message = fmt.Sprintf("backend request failed with status %d", resp.StatusCode())
	}

	return &Error{StatusCode: resp.StatusCode(), Message: message}
}
