package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const codeTTL = 10 * time.Minute

type codeEntry struct {
	code     string
	expireAt time.Time
}

// CodeStore keeps email verification codes in process memory. Entries live
// ten minutes and are evicted lazily: on successful validation or when an
// expired entry is looked up. There is no background sweep.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]codeEntry
	now   func() time.Time
}

func NewCodeStore() *CodeStore {
	return &CodeStore{
		codes: make(map[string]codeEntry),
		now:   time.Now,
	}
}

// Generate creates a fresh 6-digit code for the email, replacing any
// previous one.
func (s *CodeStore) Generate(email string) string {
	code := fmt.Sprintf("%06d", rand.Intn(1_000_000))
	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[key] = codeEntry{code: code, expireAt: s.now().Add(codeTTL)}
	return code
}

// Validate checks the code for the email. A correct code is single-use: the
// entry is removed so a second attempt with the same code fails.
func (s *CodeStore) Validate(email, code string) bool {
	if email == "" || code == "" {
		return false
	}
	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[key]
	if !ok {
		return false
	}
	if entry.expireAt.Before(s.now()) {
		delete(s.codes, key)
		return false
	}
	if !strings.EqualFold(entry.code, strings.TrimSpace(code)) {
		return false
	}
	delete(s.codes, key)
	return true
}
