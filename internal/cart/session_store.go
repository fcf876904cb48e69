package cart

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionStore persists cart payloads in a gorilla cookie session, scoped to
// one request/response pair. Values are stored as strings because gob handles
// those without registration.
type SessionStore struct {
	session *sessions.Session
	r       *http.Request
	w       http.ResponseWriter
}

func NewSessionStore(session *sessions.Session, r *http.Request, w http.ResponseWriter) *SessionStore {
	return &SessionStore{
		session: session,
		r:       r,
		w:       w,
	}
}

func (s *SessionStore) Load(key string) ([]byte, error) {
	value, ok := s.session.Values[key].(string)
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

func (s *SessionStore) Save(key string, data []byte) error {
	s.session.Values[key] = string(data)
	return s.session.Save(s.r, s.w)
}

func (s *SessionStore) Delete(key string) error {
	delete(s.session.Values, key)
	return s.session.Save(s.r, s.w)
}
