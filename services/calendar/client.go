// Package calendar talks to the webhook endpoint that fronts the agent's
// calendar. The endpoint multiplexes on a "mode" field: busy-interval
// lookups, appointment submissions and reminder delivery all share one URL.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"homeshow/models"
	"homeshow/utils"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// Client implements the calendar/booking collaborator over HTTP.
type Client struct {
	URL  string
	HTTP *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: requestTimeout},
	}
}

type busyRequest struct {
	Mode  string `json:"mode"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type busyResponse struct {
	Calendars map[string]struct {
		Busy []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"busy"`
	} `json:"calendars"`
}

// FetchBusyIntervals returns the agent's booked blocks in [start, end).
// Any transport-level failure or malformed payload is a hard failure; the
// availability computation must never proceed on partial data.
func (c *Client) FetchBusyIntervals(ctx context.Context, start, end time.Time) ([]models.BusyInterval, error) {
	payload := busyRequest{
		Mode:  "get_busy_slots",
		Start: start.Format(time.RFC3339),
		End:   end.Format(time.RFC3339),
	}

	var resp busyResponse
	if err := c.post(ctx, payload, &resp); err != nil {
		return nil, fmt.Errorf("busy-interval fetch failed: %w", err)
	}

	var intervals []models.BusyInterval
	for _, cal := range resp.Calendars {
		for _, b := range cal.Busy {
			intervals = append(intervals, models.BusyInterval{Start: b.Start, End: b.End})
		}
	}

	utils.GetLogger().Debug("fetched busy intervals",
		zap.Time("start", start), zap.Int("count", len(intervals)))
	return intervals, nil
}

type showingSubmission struct {
	Mode        string         `json:"mode"`
	ListingID   string         `json:"listing_id"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	User        showingContact `json:"user"`
}

type showingContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type confirmationResponse struct {
	ConfirmationMessage string `json:"confirmation_message"`
}

// SubmitShowing books the showing and returns the sink's confirmation
// message, defaulting when the sink omits one.
func (c *Client) SubmitShowing(ctx context.Context, req models.ShowingRequest) (string, error) {
	payload := showingSubmission{
		Mode:        "schedule_appointment",
		ListingID:   req.ListingID,
		Start:       req.Start.Format(time.RFC3339),
		End:         req.End.Format(time.RFC3339),
		Title:       req.Title,
		Description: req.Description,
		User:        showingContact{Name: req.CallerName, Phone: req.CallerPhone},
	}

	var resp confirmationResponse
	if err := c.post(ctx, payload, &resp); err != nil {
		return "", fmt.Errorf("showing submission failed: %w", err)
	}
	if resp.ConfirmationMessage == "" {
		return "Your appointment has been scheduled.", nil
	}
	return resp.ConfirmationMessage, nil
}

type reminderSubmission struct {
	Mode        string `json:"mode"`
	CallerName  string `json:"caller_name"`
	CallerPhone string `json:"caller_phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Start       string `json:"start"`
}

// SendReminder delivers a showing reminder through the same sink.
func (c *Client) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	req := reminderSubmission{
		Mode:        "send_reminder",
		CallerName:  payload.CallerName,
		CallerPhone: payload.CallerPhone,
		Address:     payload.Address,
		City:        payload.City,
		Start:       payload.Start.Format(time.RFC3339),
	}
	var resp map[string]any
	if err := c.post(ctx, req, &resp); err != nil {
		return fmt.Errorf("reminder delivery failed: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
