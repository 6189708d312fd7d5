package net

// SessionStore tracks live sessions by ID. Game loop only, no lock needed.
type SessionStore struct {
	sessions map[uint64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uint64]*Session, 16)}
}

func (s *SessionStore) Add(sess *Session) {
	s.sessions[sess.ID] = sess
}

func (s *SessionStore) Remove(id uint64) {
	delete(s.sessions, id)
}

func (s *SessionStore) Get(id uint64) (*Session, bool) {
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *SessionStore) Len() int {
	return len(s.sessions)
}

func (s *SessionStore) ForEach(fn func(*Session)) {
	for _, sess := range s.sessions {
		fn(sess)
	}
}

// Raw exposes the underlying map for iteration with IDs.
func (s *SessionStore) Raw() map[uint64]*Session {
	return s.sessions
}
