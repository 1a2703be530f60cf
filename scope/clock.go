// SPDX-License-Identifier: EPL-2.0

package scope

import "time"

// Clock estimates the playback position from wall-clock time since an
// anchor. It gets no feedback from the audio device, so a stalled render
// loop drifts from what is heard.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock anchors a clock at the current time.
func NewClock() *Clock {
	return NewClockAt(time.Now(), time.Now)
}

// NewClockAt anchors a clock at start, reading the time from now.
func NewClockAt(start time.Time, now func() time.Time) *Clock {
	return &Clock{start: start, now: now}
}

// Restart moves the anchor to now, for when playback starts after the
// clock was built.
func (c *Clock) Restart() {
	c.start = c.now()
}

// Elapsed is the time since the anchor.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// SampleOffset is floor(elapsed * sampleRate), and 0 before the anchor.
func (c *Clock) SampleOffset(sampleRate int) int {
	elapsed := c.Elapsed()
	if elapsed <= 0 {
		return 0
	}
	secs := int64(elapsed / time.Second)
	rem := int64(elapsed % time.Second)
	return int(secs*int64(sampleRate) + rem*int64(sampleRate)/int64(time.Second))
}
