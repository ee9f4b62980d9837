// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventKind distinguishes inbound chat events.
type EventKind int

const (
	EventStart EventKind = iota
	EventButton
	EventText
	EventCancel
	EventHelp
)

// String returns a label suitable for logs and metric labels.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventButton:
		return "button"
	case EventText:
		return "text"
	case EventCancel:
		return "cancel"
	case EventHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Event is a transport-independent inbound chat event.
type Event struct {
	Kind   EventKind
	UserID int64
	// Data is the button tag for EventButton and the message text for
	// EventText. It is empty otherwise.
	Data string
}
