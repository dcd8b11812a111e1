package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, "test-token", "harborview", zap.NewNop())
	c.http.SetRetryCount(0)
	return c
}

func TestClient_FloorPlan(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/venues/harborview/floor-plan", r.URL.Path)
		assert.Equal(t, "2026-08-28", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tables": [
				{
					"id": "t1", "table_number": "12", "min_covers": 2, "max_covers": 4,
					"shape": "circle", "position_x": 25.0, "position_y": 60.0,
					"width": 100, "height": 100, "rotation": 0, "status": "seated",
					"current_reservation": {"guest_name": "Okafor", "covers": 3, "seated_at": "2026-08-28T18:30:00Z"}
				},
				{
					"id": "t2", "table_number": "14", "min_covers": 2, "max_covers": 2,
					"shape": "square", "width": 60, "height": 60, "status": "available"
				}
			],
			"elements": [
				{"id": "e1", "kind": "bar", "position_x": 80, "position_y": 10,
				 "width": 200, "height": 40, "z_index": 1, "label": "BAR", "active": true}
			]
		}`))
	})

	plan, err := c.FloorPlan(context.Background(), "2026-08-28")
	require.NoError(t, err)
	require.Len(t, plan.Tables, 2)
	require.Len(t, plan.Elements, 1)

	t1 := plan.Tables[0]
	assert.Equal(t, "12", t1.Number)
	assert.Equal(t, model.ShapeCircle, t1.Shape)
	assert.Equal(t, model.StatusSeated, t1.Status)
	require.True(t, t1.Geometry.Positioned())
	assert.Equal(t, 25.0, *t1.Geometry.PosX)
	require.NotNil(t, t1.Current)
	assert.Equal(t, "Okafor", t1.Current.GuestName)
	assert.Equal(t, 3, t1.Current.Covers)

	// Unplaced table keeps nil positions rather than zeroes.
	assert.False(t, plan.Tables[1].Geometry.Positioned())

	assert.Equal(t, model.ElementBar, plan.Elements[0].Kind)
	assert.Equal(t, 1, plan.Elements[0].ZIndex)
}

func TestClient_SaveAssignments(t *testing.T) {
	var got struct {
		Assignments map[string]assignmentDTO `json:"assignments"`
	}
	var idempotencyKey string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/venues/harborview/server-assignments", r.URL.Path)
		assert.Equal(t, "2026-08-28", r.URL.Query().Get("date"))
		idempotencyKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SaveAssignments(context.Background(), "2026-08-28", map[string]model.Assignment{
		"t1": {ServerID: "srv-1", ServerName: "Alice", ServerColor: "#e07a5f"},
		"t2": {ServerID: "srv-1", ServerName: "Alice", ServerColor: "#e07a5f"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, idempotencyKey)
	require.Len(t, got.Assignments, 2)
	assert.Equal(t, "srv-1", got.Assignments["t1"].ServerID)
	assert.Equal(t, "Alice", got.Assignments["t2"].ServerName)
}

func TestClient_SeatWaitlistEntry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/venues/harborview/tables/t3/seat", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "w7", body["waitlist_entry_id"])
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, c.SeatWaitlistEntry(context.Background(), "w7", "t3"))
}

func TestClient_ErrorStatusSurfacesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "table already seated"}`))
	})

	err := c.SeatWalkIn(context.Background(), "t1", 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table already seated")
	assert.Contains(t, err.Error(), "409")
}

func TestClient_ErrorStatusWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Waitlist(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Guests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vip", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"guests": [
			{"id": "g1", "name": "Dana Reyes", "phone": "+1 555 0101",
			 "visit_count": 12, "notes": "window seat", "tags": ["vip", "allergy:shellfish"]}
		]}`))
	})

	guests, err := c.Guests(context.Background(), "vip")
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Dana Reyes", guests[0].Name)
	assert.Equal(t, 12, guests[0].Visits)
	assert.Equal(t, []string{"vip", "allergy:shellfish"}, guests[0].Tags)
}
