package agent

import "time"

type EventType string

const (
	EventStarted EventType = "started"
	EventStopped EventType = "stopped"
)

// Event is a lifecycle notification for observers. Nothing is persisted;
// delivery is synchronous on the calling goroutine.
type Event struct {
	Type    EventType
	AgentID string
	Role    string
	Time    time.Time
}

type EventListener func(Event)

func (a *Agent) OnEvent(fn EventListener) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// emit snapshots the listener list under the lock and invokes the callbacks
// without holding it, so a listener may call back into the agent.
func (a *Agent) emit(t EventType) {
	a.mu.Lock()
	listeners := make([]EventListener, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	ev := Event{Type: t, AgentID: a.id, Role: a.cfg.Role, Time: time.Now()}
	for _, fn := range listeners {
		fn(ev)
	}
}
