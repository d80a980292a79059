package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ntereshin/eventform-gateway/internal/form"
	"github.com/ntereshin/eventform-gateway/internal/goroutine"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

// SessionStore — in-memory реестр живых сессий формы с вытеснением по
// простою. Черновиком владеет ровно одна сессия; никакого разделяемого
// состояния между пользователями нет.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*form.Session
	ttl      time.Duration
	done     chan struct{}
}

// NewSessionStore создаёт реестр и запускает фоновую очистку.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	ss := &SessionStore{
		sessions: make(map[uuid.UUID]*form.Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	goroutine.SafeGo("session_store.cleanup", ss.cleanup)

	return ss
}

// Put регистрирует сессию.
func (ss *SessionStore) Put(s *form.Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessions[s.ID] = s
}

// Get возвращает сессию владельца. Чужая сессия неотличима от
// отсутствующей — наружу уходит NOT_FOUND, а не признание, что
// идентификатор существует.
func (ss *SessionStore) Get(id uuid.UUID, owner string) (*form.Session, error) {
	ss.mu.RLock()
	s, exists := ss.sessions[id]
	ss.mu.RUnlock()

	if !exists || s.Owner != owner {
		return nil, apperror.ErrSessionNotFound
	}

	s.Touch()
	return s, nil
}

// Delete убирает сессию из реестра.
func (ss *SessionStore) Delete(id uuid.UUID) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	delete(ss.sessions, id)
}

// Close останавливает фоновую очистку.
func (ss *SessionStore) Close() {
	close(ss.done)
}

// cleanup периодически вытесняет простаивающие сессии до закрытия реестра.
func (ss *SessionStore) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ss.done:
			return
		case <-ticker.C:
			ss.evictIdle(time.Now().Add(-ss.ttl))
		}
	}
}

// evictIdle убирает сессии, не тронутые с момента cutoff.
func (ss *SessionStore) evictIdle(cutoff time.Time) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for id, s := range ss.sessions {
		if s.LastTouched().Before(cutoff) {
			delete(ss.sessions, id)
		}
	}
}
