package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	auditQueueSize    = 256
	auditWriteTimeout = 5 * time.Second
)

// AuditRecorder writes audit entries to the log and, when a repository is
// configured, persists them from a single background writer. Log never
// blocks a request: entries arriving while the queue is full are logged
// and dropped.
type AuditRecorder struct {
	repo  ports.AuditRepository
	log   zerolog.Logger
	queue chan *domain.AuditLog
	done  chan struct{}
	once  sync.Once
	mu    sync.RWMutex
	shut  bool
}

// NewAuditService starts the background writer. If repo is nil, entries
// are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditRecorder {
	r := &AuditRecorder{
		repo:  repo,
		log:   log,
		queue: make(chan *domain.AuditLog, auditQueueSize),
		done:  make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *AuditRecorder) Log(_ context.Context, entry *domain.AuditLog) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	ev := r.log.Info().
		Str("action", string(entry.Action)).
		Str("resource_type", entry.ResourceType).
		Str("ip", entry.IPAddress)
	if entry.Wallet != "" {
		ev = ev.Str("wallet", entry.Wallet)
	}
	if entry.ResourceID != "" {
		ev = ev.Str("resource_id", entry.ResourceID)
	}
	if entry.Details != "" && json.Valid([]byte(entry.Details)) {
		ev = ev.RawJSON("details", []byte(entry.Details))
	}
	ev.Msg("audit")

	if r.repo == nil {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.shut {
		r.log.Warn().Str("action", string(entry.Action)).Msg("audit recorder closed, entry not persisted")
		return
	}
	select {
	case r.queue <- entry:
	default:
		r.log.Warn().Str("action", string(entry.Action)).Msg("audit queue full, entry not persisted")
	}
}

// Close stops accepting entries and waits for queued ones to be written,
// or for ctx to end.
func (r *AuditRecorder) Close(ctx context.Context) error {
	r.once.Do(func() {
		r.mu.Lock()
		r.shut = true
		close(r.queue)
		r.mu.Unlock()
	})
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *AuditRecorder) run() {
	defer close(r.done)
	for entry := range r.queue {
		r.persist(entry)
	}
}

func (r *AuditRecorder) persist(entry *domain.AuditLog) {
	ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
	defer cancel()
	if err := r.repo.Create(ctx, entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", string(entry.Action)).
			Str("audit_id", entry.ID.String()).
			Msg("failed to persist audit log")
	}
}
