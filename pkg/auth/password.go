package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Password wraps a bcrypt hash. The hashing algorithm's internals are the
// library's concern; this type only exposes make/compare.
type Password struct {
	hash string
}

func MakePassword(plain string) (*Password, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	return &Password{hash: string(hash)}, nil
}

func PasswordFromHash(hash string) *Password {
	return &Password{hash: hash}
}

func (p Password) GetHash() string {
	return p.hash
}

func (p Password) Is(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}
