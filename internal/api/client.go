// Package api is the client for the TableYeah back-of-house HTTP API. All
// durable state lives behind it; this process only renders snapshots and
// submits mutations.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

// Client wraps the TableYeah API for a single venue.
type Client struct {
	http   *resty.Client
	venue  string
	logger *zap.Logger
}

// New creates a client with bearer auth, timeouts and retry.
func New(baseURL, token, venue string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: http, venue: venue, logger: logger}
}

// Venue returns the venue slug the client is bound to.
func (c *Client) Venue() string { return c.venue }

type apiError struct {
	Message string `json:"error"`
}

func (c *Client) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		c.logger.Error("api call failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		var e apiError
		_ = json.Unmarshal(resp.Body(), &e)
		c.logger.Error("api returned error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode()),
			zap.String("message", e.Message),
		)
		if e.Message != "" {
			return fmt.Errorf("%s: %s (status %d)", op, e.Message, resp.StatusCode())
		}
		return fmt.Errorf("%s: status %d", op, resp.StatusCode())
	}
	return nil
}

// FloorPlan fetches the table and element snapshot for a service date.
func (c *Client) FloorPlan(ctx context.Context, date string) (model.FloorPlan, error) {
	var body floorPlanResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("date", date).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/floor-plan", c.venue))
	if err := c.check(resp, err, "fetch floor plan"); err != nil {
		return model.FloorPlan{}, err
	}

	plan := model.FloorPlan{
		Tables:   make([]model.Table, 0, len(body.Tables)),
		Elements: make([]model.Element, 0, len(body.Elements)),
	}
	for _, t := range body.Tables {
		plan.Tables = append(plan.Tables, t.toModel())
	}
	for _, e := range body.Elements {
		plan.Elements = append(plan.Elements, e.toModel())
	}
	return plan, nil
}

// Servers fetches the active server roster.
func (c *Client) Servers(ctx context.Context) ([]model.Server, error) {
	var body serversResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("active", "true").
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/servers", c.venue))
	if err := c.check(resp, err, "fetch servers"); err != nil {
		return nil, err
	}

	servers := make([]model.Server, 0, len(body.Servers))
	for _, s := range body.Servers {
		servers = append(servers, model.Server(s))
	}
	return servers, nil
}

// Assignments fetches the confirmed table→server map for a date.
func (c *Client) Assignments(ctx context.Context, date string) (map[string]model.Assignment, error) {
	var body assignmentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("date", date).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/server-assignments", c.venue))
	if err := c.check(resp, err, "fetch assignments"); err != nil {
		return nil, err
	}

	out := make(map[string]model.Assignment, len(body.Assignments))
	for tableID, a := range body.Assignments {
		out[tableID] = model.Assignment(a)
	}
	return out, nil
}

// SaveAssignments replaces the table→server map for a date. The idempotency
// key lets the API dedupe a retried submit after a dropped response.
func (c *Client) SaveAssignments(ctx context.Context, date string, assignments map[string]model.Assignment) error {
	payload := assignmentsResponse{Assignments: make(map[string]assignmentDTO, len(assignments))}
	for tableID, a := range assignments {
		payload.Assignments[tableID] = assignmentDTO(a)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("date", date).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(payload).
		Put(fmt.Sprintf("/v1/venues/%s/server-assignments", c.venue))
	if err := c.check(resp, err, "save assignments"); err != nil {
		return err
	}

	c.logger.Info("server assignments saved",
		zap.String("date", date),
		zap.Int("tables", len(assignments)),
	)
	return nil
}

// Waitlist fetches the current waitlist.
func (c *Client) Waitlist(ctx context.Context) ([]model.WaitlistEntry, error) {
	var body waitlistResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/waitlist", c.venue))
	if err := c.check(resp, err, "fetch waitlist"); err != nil {
		return nil, err
	}

	entries := make([]model.WaitlistEntry, 0, len(body.Entries))
	for _, e := range body.Entries {
		entries = append(entries, e.toModel())
	}
	return entries, nil
}

// SeatWalkIn seats an ad-hoc party at a table.
func (c *Client) SeatWalkIn(ctx context.Context, tableID string, covers int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(map[string]any{"covers": covers}).
		Post(fmt.Sprintf("/v1/venues/%s/tables/%s/seat", c.venue, tableID))
	return c.check(resp, err, "seat walk-in")
}

// SeatWaitlistEntry seats a waitlist party at a table.
func (c *Client) SeatWaitlistEntry(ctx context.Context, entryID, tableID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(map[string]any{"waitlist_entry_id": entryID}).
		Post(fmt.Sprintf("/v1/venues/%s/tables/%s/seat", c.venue, tableID))
	return c.check(resp, err, "seat waitlist entry")
}

// Guests searches the guest book. An empty query lists recent guests.
func (c *Client) Guests(ctx context.Context, query string) ([]model.Guest, error) {
	var body guestsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/guests", c.venue))
	if err := c.check(resp, err, "fetch guests"); err != nil {
		return nil, err
	}

	guests := make([]model.Guest, 0, len(body.Guests))
	for _, g := range body.Guests {
		guests = append(guests, model.Guest(g))
	}
	return guests, nil
}

// Events fetches upcoming ticketed events.
func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var body eventsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/events", c.venue))
	if err := c.check(resp, err, "fetch events"); err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(body.Events))
	for _, e := range body.Events {
		events = append(events, e.toModel())
	}
	return events, nil
}

// GiftCards fetches issued gift cards.
func (c *Client) GiftCards(ctx context.Context) ([]model.GiftCard, error) {
	var body giftCardsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/v1/venues/%s/gift-cards", c.venue))
	if err := c.check(resp, err, "fetch gift cards"); err != nil {
		return nil, err
	}

	cards := make([]model.GiftCard, 0, len(body.Cards))
	for _, g := range body.Cards {
		cards = append(cards, g.toModel())
	}
	return cards, nil
}
