package service

import (
	"sync"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/ws"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []ws.Event
}

func (r *recordingBroadcaster) Publish(event ws.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingBroadcaster) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]string, len(r.events))
	for i, e := range r.events {
		actions[i] = e.Action
	}
	return actions
}

func identityOf(u *model.User) model.Identity {
	return u.Identity()
}
