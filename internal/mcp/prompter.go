package mcp

import (
	"context"
	"sync"
)

type interactionKey struct{}

// interaction carries one tool call's confirmation answer and collects the
// notices raised while it runs.
type interaction struct {
	confirm bool

	mu      sync.Mutex
	asked   []string
	notices []string
}

func withInteraction(ctx context.Context, confirm bool) (context.Context, *interaction) {
	ix := &interaction{confirm: confirm}
	return context.WithValue(ctx, interactionKey{}, ix), ix
}

func interactionFrom(ctx context.Context) *interaction {
	ix, _ := ctx.Value(interactionKey{}).(*interaction)
	return ix
}

func (ix *interaction) Notices() []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return append([]string(nil), ix.notices...)
}

// declined returns the first confirmation question that was answered "no".
func (ix *interaction) declined() string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.confirm || len(ix.asked) == 0 {
		return ""
	}
	return ix.asked[0]
}

// Prompter answers store confirmations from the calling tool's "confirm"
// argument. Outside a tool call every confirmation is declined.
type Prompter struct{}

func (Prompter) Confirm(ctx context.Context, message string) bool {
	ix := interactionFrom(ctx)
	if ix == nil {
		return false
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.asked = append(ix.asked, message)
	return ix.confirm
}

func (Prompter) Notify(ctx context.Context, message string) {
	ix := interactionFrom(ctx)
	if ix == nil {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.notices = append(ix.notices, message)
}
