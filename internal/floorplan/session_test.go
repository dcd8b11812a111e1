package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KyleKincer/tableyeah-foh/internal/haptics"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func availableTable(id string) model.Table {
	return model.Table{ID: id, Number: id, Status: model.StatusAvailable}
}

func seatedTable(id string) model.Table {
	return model.Table{ID: id, Number: id, Status: model.StatusSeated}
}

var (
	alice = model.Server{ID: "srv-1", Name: "Alice", Color: "#e07a5f", Active: true}
	bruno = model.Server{ID: "srv-2", Name: "Bruno", Color: "#3d405b", Active: true}
)

func TestSession_NormalModeDispatch(t *testing.T) {
	s := NewSession(nil)
	require.Equal(t, ModeNormal, s.Mode())

	cmd := s.TapTable(availableTable("t1"))
	assert.Equal(t, CmdTablePressed, cmd.Kind)
	assert.Equal(t, "t1", cmd.TableID)

	cmd = s.HoldTable(seatedTable("t2"))
	assert.Equal(t, CmdTableHeld, cmd.Kind)
	assert.Equal(t, "t2", cmd.TableID)

	cmd = s.TapBackground()
	assert.Equal(t, CmdBackgroundPressed, cmd.Kind)
}

func TestSession_ModeExclusivityAndSelectionReset(t *testing.T) {
	s := NewSession(nil)

	s.EnterAssignServers()
	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))
	require.Equal(t, 1, s.PendingCount())

	// Entering any other mode must not leave residual selection state.
	s.EnterSeatWaitlist(model.WaitlistEntry{ID: "w1", Name: "Nguyen", Covers: 4})
	assert.Equal(t, ModeSeatWaitlist, s.Mode())
	assert.Empty(t, s.SelectedServerID())
	assert.Zero(t, s.PendingCount())

	s.EnterWalkIn(2)
	assert.Equal(t, ModeWalkIn, s.Mode())
	assert.Nil(t, s.WaitlistTarget())
	assert.Equal(t, 2, s.WalkInCovers())

	s.EnterAssignServers()
	assert.Equal(t, ModeAssignServers, s.Mode())
	assert.Equal(t, 0, s.WalkInCovers())
	assert.Empty(t, s.SelectedServerID())
}

func TestSession_WalkInDoesNotEnforceAvailability(t *testing.T) {
	s := NewSession(nil)
	s.EnterWalkIn(3)

	cmd := s.TapTable(seatedTable("t9"))
	assert.Equal(t, CmdSeatWalkIn, cmd.Kind)
	assert.Equal(t, "t9", cmd.TableID)
	assert.Equal(t, 3, cmd.Covers)
}

func TestSession_WaitlistGating(t *testing.T) {
	rec := &haptics.Recorder{}
	s := NewSession(rec)
	s.EnterSeatWaitlist(model.WaitlistEntry{ID: "w7", Name: "Okafor", Covers: 5})
	rec.Reset()

	for _, status := range []model.TableStatus{
		model.StatusSeated, model.StatusUpcoming, model.StatusOccupied,
	} {
		cmd := s.TapTable(model.Table{ID: "t1", Status: status})
		assert.Equal(t, CmdNone, cmd.Kind, "status=%s must be a silent no-op", status)
	}
	assert.Empty(t, rec.Impacts, "gated taps trigger no feedback")

	cmd := s.TapTable(availableTable("t3"))
	assert.Equal(t, CmdSeatWaitlist, cmd.Kind)
	assert.Equal(t, "t3", cmd.TableID)
	assert.Equal(t, "w7", cmd.WaitlistEntryID)
	assert.Equal(t, 5, cmd.Covers)
}

func TestSession_PendingToggleIdempotence(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()
	s.SelectServer(alice)

	s.TapTable(availableTable("t1"))
	_, ok := s.AssignmentFor("t1")
	require.True(t, ok)

	// Same server, same table: toggle off.
	s.TapTable(availableTable("t1"))
	_, ok = s.AssignmentFor("t1")
	assert.False(t, ok)
	assert.Zero(t, s.PendingCount())
}

func TestSession_SwitchingServerKeepsPending(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()

	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))
	s.SelectServer(bruno)
	assert.Equal(t, "srv-2", s.SelectedServerID())
	assert.Equal(t, 1, s.PendingCount(), "selection change keeps pending")

	// Different server on an assigned table replaces, not removes.
	s.TapTable(availableTable("t1"))
	a, ok := s.AssignmentFor("t1")
	require.True(t, ok)
	assert.Equal(t, "srv-2", a.ServerID)
	assert.Equal(t, "Bruno", a.ServerName)
}

func TestSession_TapWithoutSelectionIsNoOp(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()
	cmd := s.TapTable(availableTable("t1"))
	assert.Equal(t, CmdNone, cmd.Kind)
	assert.Zero(t, s.PendingCount())
}

func TestSession_ReselectingServerDeselects(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()
	s.SelectServer(alice)
	require.Equal(t, "srv-1", s.SelectedServerID())
	s.SelectServer(alice)
	assert.Empty(t, s.SelectedServerID())
}

func TestSession_PendingShadowsConfirmedOnlyWhileAssigning(t *testing.T) {
	s := NewSession(nil)
	s.SetConfirmed(map[string]model.Assignment{
		"t1": {ServerID: "srv-2", ServerName: "Bruno", ServerColor: "#3d405b"},
	})

	s.EnterAssignServers()
	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))

	a, ok := s.AssignmentFor("t1")
	require.True(t, ok)
	assert.Equal(t, "srv-1", a.ServerID, "pending shadows confirmed while assigning")

	s.Cancel()
	a, ok = s.AssignmentFor("t1")
	require.True(t, ok)
	assert.Equal(t, "srv-2", a.ServerID, "confirmed authoritative after cancel")
}

func TestSession_SaveFlow(t *testing.T) {
	s := NewSession(nil)

	assert.Equal(t, CmdNone, s.Save().Kind, "nothing to save in normal mode")

	s.EnterAssignServers()
	assert.False(t, s.CanSave(), "save disabled with no pending assignments")
	assert.Equal(t, CmdNone, s.Save().Kind)

	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))
	s.TapTable(availableTable("t2"))
	require.True(t, s.CanSave())

	cmd := s.Save()
	require.Equal(t, CmdSaveAssignments, cmd.Kind)
	assert.Len(t, cmd.Assignments, 2)

	// Pending survives until the host confirms persistence.
	assert.Equal(t, 2, s.PendingCount())
	assert.Equal(t, ModeAssignServers, s.Mode())

	s.CompleteSave()
	assert.Equal(t, ModeNormal, s.Mode())
	assert.Zero(t, s.PendingCount())
	assert.Empty(t, s.SelectedServerID())
}

func TestSession_SaveCommandMapIsACopy(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()
	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))

	cmd := s.Save()
	delete(cmd.Assignments, "t1")
	assert.Equal(t, 1, s.PendingCount(), "caller mutation must not reach the session")
}

func TestSession_CancelDiscardsEverything(t *testing.T) {
	s := NewSession(nil)
	s.EnterAssignServers()
	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))

	cmd := s.Cancel()
	assert.Equal(t, CmdModeCancelled, cmd.Kind)
	assert.Equal(t, ModeNormal, s.Mode())
	assert.Zero(t, s.PendingCount())
	assert.Empty(t, s.SelectedServerID())

	assert.Equal(t, CmdNone, s.Cancel().Kind, "cancel in normal mode is a no-op")
}

func TestSession_HapticIntensities(t *testing.T) {
	rec := &haptics.Recorder{}
	s := NewSession(rec)

	s.EnterAssignServers()
	assert.Equal(t, []haptics.Intensity{haptics.Medium}, rec.Impacts)

	rec.Reset()
	s.SelectServer(alice)
	s.TapTable(availableTable("t1"))
	assert.Equal(t, []haptics.Intensity{haptics.Light, haptics.Light}, rec.Impacts)

	rec.Reset()
	s.CompleteSave()
	assert.Equal(t, []haptics.Notification{haptics.Success}, rec.Notifications)

	rec.Reset()
	s.EnterWalkIn(2)
	s.Cancel()
	assert.Equal(t, []haptics.Intensity{haptics.Medium, haptics.Medium}, rec.Impacts)
}

func TestSession_HoldOutsideNormalIsNoOp(t *testing.T) {
	s := NewSession(nil)
	s.EnterWalkIn(2)
	assert.Equal(t, CmdNone, s.HoldTable(availableTable("t1")).Kind)
	assert.Equal(t, CmdNone, s.TapBackground().Kind)
}
