package repositories

import (
	"sync"
	"time"

	"github.com/tidewatch/tidewatch-backend/models"
)

// SnapshotRepository holds the latest normalized entity arrays plus the
// moment they were fetched. Every derivation reads from here; only the
// refresh loop writes. Handlers and the poller run on separate goroutines,
// hence the lock.
type SnapshotRepository struct {
	mu          sync.RWMutex
	decisions   []models.Decision
	escalations []models.Escalation
	signals     []models.Signal
	fetchedAt   time.Time

	// pending tracks entity ids with an in-flight upstream mutation. The
	// pending marker survives until the next accepted refresh, which is when
	// upstream's answer becomes visible.
	pending map[string]struct{}
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{pending: make(map[string]struct{})}
}

// Replace installs a freshly fetched snapshot. A payload older than the one
// already held is discarded: a superseded refresh must never regress the
// view, and tolerating it here means callers need no ordering guarantees.
func (repo *SnapshotRepository) Replace(decisions []models.Decision, escalations []models.Escalation,
	signals []models.Signal, fetchedAt time.Time,
) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if !repo.fetchedAt.IsZero() && fetchedAt.Before(repo.fetchedAt) {
		return false
	}
	repo.decisions = decisions
	repo.escalations = escalations
	repo.signals = signals
	repo.fetchedAt = fetchedAt
	repo.pending = make(map[string]struct{})
	return true
}

func (repo *SnapshotRepository) Decisions() []models.Decision {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.decisions
}

func (repo *SnapshotRepository) Escalations() []models.Escalation {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.escalations
}

func (repo *SnapshotRepository) Signals() []models.Signal {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.signals
}

func (repo *SnapshotRepository) DataAge() time.Time {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.fetchedAt
}

func (repo *SnapshotRepository) MarkPending(entityId string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.pending[entityId] = struct{}{}
}

func (repo *SnapshotRepository) ClearPending(entityId string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.pending, entityId)
}

func (repo *SnapshotRepository) IsPending(entityId string) bool {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	_, ok := repo.pending[entityId]
	return ok
}
