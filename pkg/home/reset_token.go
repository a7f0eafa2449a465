package home

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultResetTokenTTL = 15 * time.Minute

type resetGrant struct {
	email     string
	expiresAt time.Time
}

// ResetTokenStore holds the one-time tokens issued by the verify-security
// step: token -> grant. Tokens expire after ttl and are consumed on first use.
type ResetTokenStore struct {
	grants map[string]resetGrant
	mu     sync.Mutex
	ttl    time.Duration
}

func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		grants: make(map[string]resetGrant),
		ttl:    ttl,
	}
}

func (s *ResetTokenStore) Issue(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, grant := range s.grants {
		if now.After(grant.expiresAt) {
			delete(s.grants, token)
		}
	}

	token := uuid.NewString()
	s.grants[token] = resetGrant{
		email:     email,
		expiresAt: now.Add(s.ttl),
	}
	return token
}

func (s *ResetTokenStore) Consume(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grant, exists := s.grants[token]
	if !exists {
		return "", false
	}
	delete(s.grants, token)

	if time.Now().After(grant.expiresAt) {
		return "", false
	}
	return grant.email, true
}
