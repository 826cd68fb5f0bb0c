package conversation

import "sync"

// State is where a user currently sits in a guided flow. The zero value
// means no flow is active.
type State int

const (
	StateNone State = iota

	// registration, in strict order
	StateName
	StateAge
	StateGender
	StateProfilePicture
	StateUniversity
	StateTargetUniversities
	StateHobbies
	StateBio
	StateRelationshipPreference
	StateCompleted

	// single-field edits, reachable from the edit menu in any order
	StateEditName
	StateEditAge
	StateEditPicture
	StateEditHobbies
	StateEditBio

	// secret crush
	StateCrushSelect
	StateCrushExternalName
	StateCrushExternalSocial
	StateCrushExternalPhoto

	// chat relay
	StateChatting
)

// Session holds a user's flow position plus whatever the flow has collected
// so far. Sessions live in memory only and vanish on restart.
type Session struct {
	State        State
	ChattingWith int64
	CrushName    string
	CrushSocial  string
}

/*
SESSION MANAGER
*/

type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the user's session; unknown users get the zero
// session.
func (m *Manager) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s := m.sessions[userID]; s != nil {
		return *s
	}
	return Session{}
}

func (m *Manager) SetState(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).State = state
}

// StartChat switches the user into the message relay with the given match.
func (m *Manager) StartChat(userID, matchID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(userID)
	s.State = StateChatting
	s.ChattingWith = matchID
}

func (m *Manager) SetCrushName(userID int64, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).CrushName = name
}

func (m *Manager) SetCrushSocial(userID int64, social string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).CrushSocial = social
}

// Reset drops the session entirely, putting the user back at StateNone.
// Fields already written to the profile stay written.
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// session returns the live entry, creating it when missing. Callers hold mu.
func (m *Manager) session(userID int64) *Session {
	s := m.sessions[userID]
	if s == nil {
		s = &Session{}
		m.sessions[userID] = s
	}
	return s
}
