// Package haptics abstracts the tactile feedback the mobile builds get from
// the OS. In a terminal the closest analog is the bell, so the real
// implementation stays quiet for light pulses and rings only on mode
// changes and notifications. The port exists mostly so interaction logic
// can assert feedback intensity in tests.
package haptics

import (
	"io"
	"os"
)

// Intensity of an impact pulse.
type Intensity int

const (
	Light Intensity = iota
	Medium
)

// Notification outcome feedback.
type Notification int

const (
	Success Notification = iota
	Warning
	Error
)

// Port receives feedback events from interaction logic.
type Port interface {
	Impact(Intensity)
	Notify(Notification)
}

// Terminal emits feedback via the terminal bell. Light impacts are swallowed;
// a bell per cursor tap would be unbearable.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal port writing to stdout.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stdout}
}

func (t *Terminal) Impact(i Intensity) {
	if i == Light {
		return
	}
	_, _ = io.WriteString(t.out, "\a")
}

func (t *Terminal) Notify(Notification) {
	_, _ = io.WriteString(t.out, "\a")
}

// Recorder captures feedback for tests.
type Recorder struct {
	Impacts       []Intensity
	Notifications []Notification
}

func (r *Recorder) Impact(i Intensity) {
	r.Impacts = append(r.Impacts, i)
}

func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Reset clears recorded feedback.
func (r *Recorder) Reset() {
	r.Impacts = nil
	r.Notifications = nil
}

// Silent discards all feedback.
type Silent struct{}

func (Silent) Impact(Intensity)    {}
func (Silent) Notify(Notification) {}
