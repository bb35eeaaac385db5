package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// Logger writes audit entries as structured log lines and keeps the most
// recent ones in memory.
type Logger struct {
	logg *logger.Logger
	now  func() time.Time

	mu      sync.Mutex
	recent  []models.AuditLog
	maxKeep int
}

func New(logg *logger.Logger) *Logger {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Logger{
		logg:    logg,
		now:     time.Now,
		maxKeep: 500,
	}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metadata,
		CreatedAt: l.now().UTC(),
	}

	fields := map[string]any{
		"audit_action": action,
		"audit_entity": entity,
	}
	if userID != nil {
		fields["user_id"] = *userID
	}
	if entityID != nil {
		fields["entity_id"] = *entityID
	}
	if metadata != nil {
		fields["metadata"] = metadata
	}
	ctx := l.logg.WithFields(context.Background(), fields)
	l.logg.Info(ctx, "audit")

	l.mu.Lock()
	l.recent = append(l.recent, entry)
	if len(l.recent) > l.maxKeep {
		l.recent = l.recent[len(l.recent)-l.maxKeep:]
	}
	l.mu.Unlock()

	return nil
}

// Recent returns the retained entries, oldest first.
func (l *Logger) Recent() []models.AuditLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.AuditLog, len(l.recent))
	copy(out, l.recent)
	return out
}
