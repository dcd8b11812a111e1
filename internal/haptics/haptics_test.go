package haptics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Port implementations handed to a session must be usable as-is.
var (
	_ Port = NewTerminal()
	_ Port = &Recorder{}
	_ Port = Silent{}
)

func TestTerminalSwallowsLightImpacts(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{out: &buf}

	term.Impact(Light)
	assert.Empty(t, buf.String(), "light pulses stay silent")

	term.Impact(Medium)
	assert.Equal(t, "\a", buf.String())
}

func TestTerminalNotifyRingsBell(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{out: &buf}

	term.Notify(Success)
	term.Notify(Error)
	assert.Equal(t, "\a\a", buf.String())
}

func TestNewTerminalHasWriter(t *testing.T) {
	term := NewTerminal()
	assert.NotNil(t, term.out, "constructed port must be able to emit")
}

func TestRecorderCapturesAndResets(t *testing.T) {
	rec := &Recorder{}
	rec.Impact(Light)
	rec.Impact(Medium)
	rec.Notify(Warning)

	assert.Equal(t, []Intensity{Light, Medium}, rec.Impacts)
	assert.Equal(t, []Notification{Warning}, rec.Notifications)

	rec.Reset()
	assert.Empty(t, rec.Impacts)
	assert.Empty(t, rec.Notifications)
}
