package project

import (
	"context"
	"time"
)

// RealClock schedules callbacks on the runtime timer.
type RealClock struct{}

// AfterFunc runs f in its own goroutine once d has elapsed.
func (RealClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// silentPrompter declines every confirmation and drops notices.
type silentPrompter struct{}

func (silentPrompter) Confirm(context.Context, string) bool { return false }

func (silentPrompter) Notify(context.Context, string) {}
