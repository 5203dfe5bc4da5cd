// Package sheets is the client for the spreadsheet-backed web app that owns
// all persistent state (mentors, students, slots, bookings). Every operation
// is a POST of a {"function", "parameters"} envelope to one configured
// endpoint. The client performs no retries and no caching: the remote
// service owns consistency, including the book-slot race.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/campusmentor/booking-portal/config"
)

// Default is the process-wide client, set by Init. Tests swap it for a
// client pointed at a fake backend.
var Default *Client

// Init builds the default client from the environment. An empty URL is not
// fatal here: every call against an unconfigured client fails with a
// configuration error instead, without touching the network.
func Init() {
	url := config.SheetsWebAppURL()
	if url == "" {
		log.Println("Warning: SHEETS_WEBAPP_URL is not set. All backend calls will fail until it is configured.")
	}
	Default = New(url)
}

type Client struct {
	url  string
	http *http.Client
}

func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Response is the normalized reply envelope of the remote service.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Reason  string          `json:"reason,omitempty"`
	// The getMentorByEmail reply carries the record in a dedicated field
	// rather than data.
	Mentor json.RawMessage `json:"mentor,omitempty"`
}

// CallError is the uniform failure every remote operation returns. Reason
// carries a business-rule rejection (e.g. ALREADY_BOOKED) unchanged from the
// remote reply.
type CallError struct {
	Message string
	Reason  string
}

func (e *CallError) Error() string {
	return e.Message
}

type envelope struct {
	Function   string         `json:"function"`
	Parameters map[string]any `json:"parameters"`
}

// Call posts one operation to the backend and normalizes every failure mode
// into the Response shape. Transport errors never propagate to the caller.
func (c *Client) Call(ctx context.Context, function string, params map[string]any) Response {
	if c == nil || c.url == "" {
		return Response{Success: false, Error: "Sheets web app URL not configured"}
	}
	if params == nil {
		params = map[string]any{}
	}

	payload, err := json.Marshal(envelope{Function: function, Parameters: params})
	if err != nil {
		return Response{Success: false, Error: fmt.Sprintf("failed to encode %s request: %v", function, err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Response{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("sheets call %s failed: %v", function, err)
		return Response{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{Success: false, Error: fmt.Sprintf("failed to read %s response: %v", function, err)}
	}
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Non-JSON error response"
		if isJSON {
			var remote Response
			if json.Unmarshal(body, &remote) == nil && remote.Error != "" {
				msg = remote.Error
			} else {
				msg = string(body)
			}
		}
		log.Printf("sheets call %s: HTTP %d: %.200s", function, resp.StatusCode, body)
		return Response{Success: false, Error: fmt.Sprintf("Sheets backend returned %d: %s", resp.StatusCode, msg)}
	}

	// A 2xx that is not JSON is a distinct failure: the backend produced
	// malformed output rather than an HTTP error.
	if !isJSON {
		log.Printf("sheets call %s returned non-JSON response: %.200s", function, body)
		return Response{Success: false, Error: "Sheets backend returned invalid response format (expected JSON)"}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		log.Printf("sheets call %s returned undecodable JSON: %v", function, err)
		return Response{Success: false, Error: "Sheets backend returned invalid data format"}
	}
	return out
}

// call runs one operation and decodes its data payload into out when given.
func (c *Client) call(ctx context.Context, function string, params map[string]any, out any) error {
	resp := c.Call(ctx, function, params)
	if !resp.Success {
		return asCallError(resp)
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return &CallError{Message: "Sheets backend returned invalid data format"}
		}
	}
	return nil
}

func asCallError(resp Response) *CallError {
	callErr := &CallError{Message: resp.Error, Reason: resp.Reason}
	if callErr.Message == "" {
		callErr.Message = "Unknown error"
	}
	// Some backend versions put the rejection reason inside data.
	if callErr.Reason == "" && len(resp.Data) > 0 {
		var inner struct {
			Reason string `json:"reason"`
		}
		if json.Unmarshal(resp.Data, &inner) == nil {
			callErr.Reason = inner.Reason
		}
	}
	return callErr
}
