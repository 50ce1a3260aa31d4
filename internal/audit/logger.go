// AngelaMos | 2026
// logger.go

package audit

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/angelamos/frontdesk/internal/middleware"
	"github.com/angelamos/frontdesk/internal/store"
)

// Logger appends audit entries to the "logs" collection. Writes never fail
// the calling operation: storage errors are logged and dropped.
type Logger struct {
	entries *store.Collection[Entry]
	log     *slog.Logger
}

func NewLogger(st *store.Store, log *slog.Logger) *Logger {
	return &Logger{
		entries: store.NewCollection[Entry](st, "logs"),
		log:     log,
	}
}

// Record writes an entry attributed to the authenticated user on the
// context, or to the guest sentinel when there is none.
func (l *Logger) Record(ctx context.Context, action string, payload map[string]any) {
	actorID := middleware.GetUserID(ctx)
	actorRole := middleware.GetUserRole(ctx)

	if actorID == "" {
		actorID = ActorGuest
		actorRole = ActorGuest
	}

	l.RecordAs(ctx, actorID, actorRole, action, payload)
}

// RecordAs writes an entry with an explicit actor. Login uses it before the
// session exists; seeding uses it with the system sentinel.
func (l *Logger) RecordAs(
	ctx context.Context,
	actorID string,
	actorRole string,
	action string,
	payload map[string]any,
) {
	entry := Entry{
		ID:        store.NewID(),
		Action:    action,
		Payload:   payload,
		UserID:    actorID,
		UserRole:  actorRole,
		CreatedAt: time.Now().UTC(),
	}

	if err := l.entries.Insert(ctx, entry); err != nil {
		l.log.Warn("audit write failed",
			"action", action,
			"actor", actorID,
			"error", err,
		)
	}
}

// List returns all entries newest first.
func (l *Logger) List(ctx context.Context) ([]Entry, error) {
	entries, err := l.entries.All(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
