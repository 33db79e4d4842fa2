package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind identifies a user-triggered request type.
type ActionKind string

const (
	KindTranslate ActionKind = "translate"
	KindSpeak     ActionKind = "speak"
)

// ActionStatus is the lifecycle state of one request/response cycle.
type ActionStatus string

const (
	StatusIdle           ActionStatus = "idle"
	StatusPending        ActionStatus = "pending"
	StatusRendered       ActionStatus = "rendered"
	StatusAlertShown     ActionStatus = "alert_shown"
	StatusLoggedSilently ActionStatus = "logged_silently"
	StatusDiscarded      ActionStatus = "discarded"
)

// Action records a single translate or speak request from trigger to resolution.
type Action struct {
	ID          string
	Kind        ActionKind
	Seq         uint64
	Status      ActionStatus
	Err         error
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewAction creates a pending action of the given kind with a fresh ID.
func NewAction(kind ActionKind, seq uint64) *Action {
	return &Action{
		ID:        uuid.New().String(),
		Kind:      kind,
		Seq:       seq,
		Status:    StatusPending,
		StartedAt: time.Now(),
	}
}

// Resolve moves the action to a terminal status.
func (a *Action) Resolve(status ActionStatus, err error) {
	a.Status = status
	a.Err = err
	now := time.Now()
	a.CompletedAt = &now
}

// Done reports whether the action has left the pending state.
func (a *Action) Done() bool {
	return a.Status != StatusPending && a.Status != StatusIdle
}

// Duration is the time between trigger and resolution, or zero while pending.
func (a *Action) Duration() time.Duration {
	if a.CompletedAt == nil {
		return 0
	}
	return a.CompletedAt.Sub(a.StartedAt)
}

// StatusText returns a human-readable status for the frontends.
func (a *Action) StatusText() string {
	switch a.Status {
	case StatusIdle:
		return "Ready"
	case StatusPending:
		if a.Kind == KindSpeak {
			return "Generating speech..."
		}
		return "Translating..."
	case StatusRendered:
		if a.Kind == KindSpeak {
			return "Playing"
		}
		return "Translated"
	case StatusAlertShown:
		return "Backend reported an error"
	case StatusLoggedSilently:
		return "Ready"
	case StatusDiscarded:
		return "Superseded by a newer request"
	default:
		return string(a.Status)
	}
}

// StatusIcon returns an icon for the status line, shown before StatusText.
func (a *Action) StatusIcon() string {
	switch a.Status {
	case StatusPending:
		return "🔄"
	case StatusRendered:
		return "✅"
	case StatusAlertShown:
		return "❌"
	case StatusDiscarded:
		return "⏭"
	default:
		return "●"
	}
}
