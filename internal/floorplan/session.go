package floorplan

import (
	"github.com/KyleKincer/tableyeah-foh/internal/haptics"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

// Mode is the single answer to "what does tapping a table do right now".
type Mode int

const (
	ModeNormal Mode = iota
	ModeWalkIn
	ModeSeatWaitlist
	ModeAssignServers
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeWalkIn:
		return "walk-in"
	case ModeSeatWaitlist:
		return "seat-waitlist"
	case ModeAssignServers:
		return "assign-servers"
	default:
		return "unknown"
	}
}

// CommandKind discriminates Command values emitted by the session.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdTablePressed
	CmdTableHeld
	CmdBackgroundPressed
	CmdSeatWalkIn
	CmdSeatWaitlist
	CmdServerToggled
	CmdSaveAssignments
	CmdModeCancelled
)

// Command is what the host screen should do in response to an interaction.
// The session never performs I/O itself; it only describes the action.
type Command struct {
	Kind            CommandKind
	TableID         string
	Covers          int
	WaitlistEntryID string
	Assignments     map[string]model.Assignment
}

var none = Command{Kind: CmdNone}

// Session owns the transient interaction state of the floor-plan canvas:
// the active mode and whatever that mode needs locally. Durable state never
// lives here; a cancelled session leaves no trace.
type Session struct {
	mode           Mode
	walkInCovers   int
	waitlistTarget *model.WaitlistEntry
	selectedServer *model.Server
	pending        map[string]model.Assignment
	confirmed      map[string]model.Assignment
	pulse          haptics.Port
}

// NewSession creates a session in normal mode.
func NewSession(pulse haptics.Port) *Session {
	if pulse == nil {
		pulse = haptics.Silent{}
	}
	return &Session{
		mode:      ModeNormal,
		pending:   map[string]model.Assignment{},
		confirmed: map[string]model.Assignment{},
		pulse:     pulse,
	}
}

// Mode returns the active interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// SetConfirmed replaces the read-only confirmed assignment map supplied by
// the host. The session never mutates it, only shadows it while assigning.
func (s *Session) SetConfirmed(assignments map[string]model.Assignment) {
	s.confirmed = map[string]model.Assignment{}
	for id, a := range assignments {
		s.confirmed[id] = a
	}
}

// reset drops every piece of mode-local state in one step. Entering any
// mode goes through here so selection from a previous mode cannot leak.
func (s *Session) reset() {
	s.walkInCovers = 0
	s.waitlistTarget = nil
	s.selectedServer = nil
	s.pending = map[string]model.Assignment{}
}

// EnterWalkIn starts walk-in seating for a party of the given size.
func (s *Session) EnterWalkIn(covers int) {
	s.reset()
	s.mode = ModeWalkIn
	s.walkInCovers = covers
	s.pulse.Impact(haptics.Medium)
}

// EnterSeatWaitlist starts seating a specific waitlist entry.
func (s *Session) EnterSeatWaitlist(entry model.WaitlistEntry) {
	s.reset()
	s.mode = ModeSeatWaitlist
	s.waitlistTarget = &entry
	s.pulse.Impact(haptics.Medium)
}

// EnterAssignServers starts server-assignment mode with nothing selected.
func (s *Session) EnterAssignServers() {
	s.reset()
	s.mode = ModeAssignServers
	s.pulse.Impact(haptics.Medium)
}

// SelectServer picks the server that subsequent table taps toggle.
// Re-selecting the current server deselects it. Already-pending assignments
// survive a selection change.
func (s *Session) SelectServer(srv model.Server) {
	if s.mode != ModeAssignServers {
		return
	}
	if s.selectedServer != nil && s.selectedServer.ID == srv.ID {
		s.selectedServer = nil
	} else {
		s.selectedServer = &srv
	}
	s.pulse.Impact(haptics.Light)
}

// ClearServerSelection deselects without touching pending assignments.
func (s *Session) ClearServerSelection() {
	if s.mode != ModeAssignServers || s.selectedServer == nil {
		return
	}
	s.selectedServer = nil
	s.pulse.Impact(haptics.Light)
}

// SelectedServerID returns the selected server's id, or "" when none.
func (s *Session) SelectedServerID() string {
	if s.selectedServer == nil {
		return ""
	}
	return s.selectedServer.ID
}

// WalkInCovers returns the pending walk-in party size.
func (s *Session) WalkInCovers() int { return s.walkInCovers }

// WaitlistTarget returns the entry being seated, or nil.
func (s *Session) WaitlistTarget() *model.WaitlistEntry { return s.waitlistTarget }

// PendingCount returns the number of unsaved assignments.
func (s *Session) PendingCount() int { return len(s.pending) }

// CanSave reports whether there is anything to persist.
func (s *Session) CanSave() bool {
	return s.mode == ModeAssignServers && len(s.pending) > 0
}

// Pending returns a copy of the unsaved assignment map.
func (s *Session) Pending() map[string]model.Assignment {
	out := make(map[string]model.Assignment, len(s.pending))
	for id, a := range s.pending {
		out[id] = a
	}
	return out
}

// AssignmentFor resolves the assignment to render for a table. While
// assign-servers mode is active the pending map shadows the confirmed one;
// otherwise the confirmed map is authoritative.
func (s *Session) AssignmentFor(tableID string) (model.Assignment, bool) {
	if s.mode == ModeAssignServers {
		if a, ok := s.pending[tableID]; ok {
			return a, true
		}
	}
	a, ok := s.confirmed[tableID]
	return a, ok
}

// TapTable dispatches a tap according to the active mode.
func (s *Session) TapTable(t model.Table) Command {
	switch s.mode {
	case ModeNormal:
		s.pulse.Impact(haptics.Light)
		return Command{Kind: CmdTablePressed, TableID: t.ID}

	case ModeWalkIn:
		// Availability is deliberately not enforced here; the host decides.
		s.pulse.Impact(haptics.Light)
		return Command{Kind: CmdSeatWalkIn, TableID: t.ID, Covers: s.walkInCovers}

	case ModeSeatWaitlist:
		if t.Status != model.StatusAvailable {
			return none
		}
		s.pulse.Impact(haptics.Light)
		return Command{
			Kind:            CmdSeatWaitlist,
			TableID:         t.ID,
			Covers:          s.waitlistTarget.Covers,
			WaitlistEntryID: s.waitlistTarget.ID,
		}

	case ModeAssignServers:
		if s.selectedServer == nil {
			return none
		}
		if existing, ok := s.pending[t.ID]; ok && existing.ServerID == s.selectedServer.ID {
			delete(s.pending, t.ID)
		} else {
			s.pending[t.ID] = model.Assignment{
				ServerID:    s.selectedServer.ID,
				ServerName:  s.selectedServer.Name,
				ServerColor: s.selectedServer.Color,
			}
		}
		s.pulse.Impact(haptics.Light)
		return Command{Kind: CmdServerToggled, TableID: t.ID}
	}
	return none
}

// HoldTable dispatches a long-press; only normal mode reacts.
func (s *Session) HoldTable(t model.Table) Command {
	if s.mode != ModeNormal {
		return none
	}
	s.pulse.Impact(haptics.Light)
	return Command{Kind: CmdTableHeld, TableID: t.ID}
}

// TapBackground dispatches a tap that hit no table.
func (s *Session) TapBackground() Command {
	if s.mode != ModeNormal {
		return none
	}
	return Command{Kind: CmdBackgroundPressed}
}

// Save hands the full pending map to the host for persistence. The pending
// state stays put until CompleteSave: a failed save must leave the operator
// able to retry with nothing lost.
func (s *Session) Save() Command {
	if !s.CanSave() {
		return none
	}
	return Command{Kind: CmdSaveAssignments, Assignments: s.Pending()}
}

// CompleteSave is called once the host has confirmed persistence. It clears
// all mode-local state and returns to normal.
func (s *Session) CompleteSave() {
	s.reset()
	s.mode = ModeNormal
	s.pulse.Notify(haptics.Success)
}

// Cancel discards all mode-local state and returns to normal.
func (s *Session) Cancel() Command {
	if s.mode == ModeNormal {
		return none
	}
	s.reset()
	s.mode = ModeNormal
	s.pulse.Impact(haptics.Medium)
	return Command{Kind: CmdModeCancelled}
}
