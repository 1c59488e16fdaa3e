// Package repositories はセッション状態を保持するリポジトリを提供します。
package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CodyT21/todos/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type sessionEntry struct {
	session  *models.Session
	lastSeen time.Time
}

// SessionRepository はセッションをメモリ上に保持します。永続化はしません。
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionRepository は新しいSessionRepositoryインスタンスを作成します。
// ttl を超えてアクセスのないセッションは期限切れになります。
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock は現在時刻の取得関数を差し替えます。
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// Create は空のセッションを作成し、そのIDを返します。
func (r *SessionRepository) Create() (string, *models.Session) {
	id := uuid.NewString()
	session := models.NewSession()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &sessionEntry{session: session, lastSeen: r.now()}
	return id, session
}

// FindByID はIDでセッションを検索し、最終アクセス時刻を更新します。
func (r *SessionRepository) FindByID(id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	if r.expired(entry, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = now
	return entry.session, nil
}

// Delete はセッションを破棄します。
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count は保持しているセッション数を返します。
func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// PurgeExpired は期限切れのセッションを削除し、削除した件数を返します。
func (r *SessionRepository) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	purged := 0
	for id, entry := range r.sessions {
		if r.expired(entry, now) {
			delete(r.sessions, id)
			purged++
		}
	}
	return purged
}

func (r *SessionRepository) expired(entry *sessionEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(entry.lastSeen) > r.ttl
}
