// Package notify defines the notification sink the planning engine
// reports through. The contract is fire-and-forget: sinks display (or
// record) the message and the caller never consumes a result.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/store"
)

// Notifier receives user-facing messages from the core.
type Notifier interface {
	Notify(ctx context.Context, kind model.NotificationKind, message string)
}

// LogNotifier writes notifications to a structured logger. It is the
// default sink when no presentation layer is attached.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a logger-backed sink.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notify").Logger()}
}

// Notify logs the message at a level matching its kind.
func (n *LogNotifier) Notify(_ context.Context, kind model.NotificationKind, message string) {
	switch kind {
	case model.NotifyError:
		n.log.Error().Msg(message)
	case model.NotifyWarning:
		n.log.Warn().Msg(message)
	default:
		n.log.Info().Str("kind", string(kind)).Msg(message)
	}
}

// StoreNotifier persists notifications to the store's notification
// feed so the presentation layer can show and dismiss them later.
// Persistence failures are logged and swallowed: a lost toast must
// never fail a planning operation.
type StoreNotifier struct {
	db  store.Store
	log zerolog.Logger
}

// NewStoreNotifier creates a store-backed sink.
func NewStoreNotifier(db store.Store, log zerolog.Logger) *StoreNotifier {
	return &StoreNotifier{db: db, log: log.With().Str("component", "notify").Logger()}
}

// Notify records the message in the notification feed.
func (n *StoreNotifier) Notify(ctx context.Context, kind model.NotificationKind, message string) {
	err := n.db.CreateNotification(ctx, model.Notification{Kind: kind, Message: message})
	if err != nil {
		n.log.Error().Err(err).Str("kind", string(kind)).Msg("persisting notification")
	}
}

// Recorder captures notifications in memory for assertions in tests.
type Recorder struct {
	Entries []model.Notification
}

// Notify appends the message to the recorded entries.
func (r *Recorder) Notify(_ context.Context, kind model.NotificationKind, message string) {
	r.Entries = append(r.Entries, model.Notification{Kind: kind, Message: message})
}
