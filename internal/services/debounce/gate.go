package debounce

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Gate is the admission control for incoming detection signals. Each
// room code owns an independent slot holding the last admitted
// timestamp; the compare-and-update on that slot is a single critical
// section, so two near-simultaneous signals for the same room can
// never both be admitted. Slots are created on first use and kept for
// the process lifetime so debounce history is never lost.
type Gate struct {
	window time.Duration

	mu    sync.RWMutex
	rooms map[string]*roomSlot
}

type roomSlot struct {
	mu           sync.Mutex
	lastAdmitted time.Time
}

// NewGate creates a gate with the given cooldown window
func NewGate(window time.Duration) *Gate {
	log.Info().Dur("window", window).Msg("Debounce gate initialized")
	return &Gate{
		window: window,
		rooms:  make(map[string]*roomSlot),
	}
}

// TryAdmit decides whether a signal for roomCode observed at now is a
// new alert or a duplicate of a recent one. The first signal for a
// room is always admitted; afterwards a signal is admitted only when
// strictly more than the window has elapsed since the last admission.
// The decision and the state update happen atomically per room; calls
// for different rooms do not contend.
func (g *Gate) TryAdmit(roomCode string, now time.Time) bool {
	slot := g.slot(roomCode)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if !slot.lastAdmitted.IsZero() && now.Sub(slot.lastAdmitted) <= g.window {
		return false
	}
	slot.lastAdmitted = now
	return true
}

func (g *Gate) slot(roomCode string) *roomSlot {
	g.mu.RLock()
	slot, ok := g.rooms[roomCode]
	g.mu.RUnlock()
	if ok {
		return slot
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if slot, ok = g.rooms[roomCode]; !ok {
		slot = &roomSlot{}
		g.rooms[roomCode] = slot
	}
	return slot
}
