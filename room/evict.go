// room/evict.go
package room

import (
	"time"

	"github.com/playgrid/arcade/logger"
	"github.com/playgrid/arcade/timer"
)

// SweepIdle evicts rooms that have had zero members for longer than ttl
// and returns their IDs. Occupied rooms are never evicted, no matter
// how old: state has to outlive a single connection so a rejoining
// player sees the current board.
func (m *Manager) SweepIdle(now time.Time, ttl time.Duration) []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var evicted []string
	for id, room := range m.rooms {
		emptySince := room.EmptySince()
		if emptySince.IsZero() {
			continue
		}
		if now.Sub(emptySince) > ttl {
			delete(m.rooms, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// SweepIdle runs the store sweep and keeps the active-room gauge in
// step, so evictions show up without waiting for the next join.
func (c *Coordinator) SweepIdle(now time.Time, ttl time.Duration) []string {
	evicted := c.rooms.SweepIdle(now, ttl)
	if c.stats != nil {
		c.stats.SetActiveRooms(c.rooms.Count())
	}
	return evicted
}

// ScheduleEviction runs SweepIdle on a fixed interval. Returns the
// timer ID so callers can cancel the sweep.
func (c *Coordinator) ScheduleEviction(timers *timer.TimerManager, interval, ttl time.Duration) int64 {
	return timers.AddTimer(interval, interval, func() {
		if evicted := c.SweepIdle(time.Now(), ttl); len(evicted) > 0 {
			logger.Log.Infof("Evicted %d idle rooms: %v", len(evicted), evicted)
		}
	})
}
