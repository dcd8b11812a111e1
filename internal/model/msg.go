package model

import "time"

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// FloorPlanLoadedMsg is sent when the floor snapshot for a date is loaded.
type FloorPlanLoadedMsg struct {
	Date      string // ISO 8601 service date
	Plan      FloorPlan
	FetchedAt time.Time
	FromCache bool
}

// ServersLoadedMsg is sent when the active server roster is loaded.
type ServersLoadedMsg struct {
	Servers []Server
}

// AssignmentsLoadedMsg is sent when the confirmed per-date server
// assignment map is loaded.
type AssignmentsLoadedMsg struct {
	Date        string
	Assignments map[string]Assignment
}

// AssignmentsSavedMsg is sent when a pending assignment map was persisted.
type AssignmentsSavedMsg struct {
	Date        string
	Assignments map[string]Assignment
}

// AssignmentsSaveFailedMsg is sent when persisting assignments failed.
// The floor screen keeps its pending map so the operator can retry.
type AssignmentsSaveFailedMsg struct {
	Err error
}

// WaitlistLoadedMsg is sent when the waitlist is loaded.
type WaitlistLoadedMsg struct {
	Entries []WaitlistEntry
}

// PartySeatedMsg is sent when a walk-in or waitlist party was seated.
type PartySeatedMsg struct {
	TableID         string
	Covers          int
	WaitlistEntryID string // empty for walk-ins
}

// SeatFailedMsg is sent when a seat mutation was rejected.
type SeatFailedMsg struct {
	Err error
}

// GuestsLoadedMsg is sent when the guest book is loaded.
type GuestsLoadedMsg struct {
	Guests []Guest
	Query  string
}

// EventsLoadedMsg is sent when the events list is loaded.
type EventsLoadedMsg struct {
	Events []Event
}

// GiftCardsLoadedMsg is sent when the gift card list is loaded.
type GiftCardsLoadedMsg struct {
	Cards []GiftCard
}

// TurnTickMsg is the periodic turn-time refresh while the floor screen is
// visible. It carries the tick time so stale ticks can be dropped.
type TurnTickMsg struct {
	At time.Time
}

// Screen represents different app screens.
type Screen int

const (
	ScreenFloor Screen = iota
	ScreenWaitlist
	ScreenGuests
	ScreenEvents
	ScreenGiftCards
	ScreenSettings
)

// InputMode represents whether keys navigate or feed a text prompt.
type InputMode int

const (
	InputNav InputMode = iota
	InputPrompt
)
