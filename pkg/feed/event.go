// Package feed streams entity state changes into application state
// snapshots, from a websocket or from a JSON-lines event file.
package feed

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/masonry/pkg/appstate"
)

// Handler receives decoded events in arrival order.
type Handler func(ev appstate.Event)

const stateChanged = "state_changed"

// message accepts both a bare event and the state_changed envelope of
// event-bus style servers.
type message struct {
	appstate.Event

	Type  string `json:"type"`
	Inner *struct {
		EventType string         `json:"event_type"`
		Data      appstate.Event `json:"data"`
	} `json:"event"`
}

// DecodeEvent parses one JSON message. ok is false for well-formed messages
// that carry no state change.
func DecodeEvent(data []byte) (ev appstate.Event, ok bool, err error) {
	var msg message
	if err := json.Unmarshal(data, &msg); err != nil {
		return appstate.Event{}, false, fmt.Errorf("failed to decode event: %w", err)
	}

	if msg.Inner != nil {
		if msg.Inner.EventType != "" && msg.Inner.EventType != stateChanged {
			return appstate.Event{}, false, nil
		}
		ev = msg.Inner.Data
	} else {
		ev = msg.Event
	}

	if ev.EntityID == "" && ev.NewState != nil {
		ev.EntityID = ev.NewState.EntityID
	}
	if ev.EntityID == "" {
		return appstate.Event{}, false, nil
	}
	return ev, true, nil
}
