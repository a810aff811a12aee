package roster

import (
	"sync"

	"github.com/google/uuid"
	"github.com/staffio-dev/roster-manager/backend/internal/calendar"
)

// Manager 管理所有活跃的排班会话，会话只存在于内存中，
// 服务重启后未发布的编辑内容会丢失
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Create(managerID int64, month calendar.Month, catalog *Catalog, opts ...EngineOption) *Session {
	session := NewSession(uuid.NewString(), managerID, month, catalog, opts...)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID()] = session

	return session
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	return session, ok
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}
