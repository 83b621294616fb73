package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal is one account in the fixed in-memory credential set. Only the
// bcrypt hash of the password is retained.
type Principal struct {
	Username     string
	PasswordHash []byte
	Role         string
}

// Store holds the full principal set. The service runs with exactly two
// accounts (one USER, one ADMIN) configured per environment; the set never
// changes after startup, so lookups need no locking.
type Store struct {
	principals map[string]Principal
}

// Account is the plaintext configuration for a principal. The password is
// hashed on store construction and not kept.
type Account struct {
	Username string
	Password string
	Role     string
}

func NewStore(accounts ...Account) (*Store, error) {
	principals := make(map[string]Principal, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		principals[a.Username] = Principal{
			Username:     a.Username,
			PasswordHash: hash,
			Role:         a.Role,
		}
	}
	return &Store{principals: principals}, nil
}

// Authenticate re-verifies credentials on every call; there is no session
// state anywhere (stateless policy).
func (s *Store) Authenticate(username, password string) (Principal, error) {
	p, ok := s.principals[username]
	if !ok {
		// Burn a comparison anyway so unknown usernames cost the same
		// as wrong passwords.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return Principal{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(password)); err != nil {
		return Principal{}, ErrInvalidCredentials
	}
	return p, nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("-"), bcrypt.DefaultCost)
