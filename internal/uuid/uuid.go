package uuid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUID is a thin wrapper around google's uuid.UUID exposing the short hex
// form used to label generated object names.
type UUID uuid.UUID

// NewUUID creates a new random UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// Short returns the first 8 hex characters of the UUID.
func (u UUID) Short() string {
	b := uuid.UUID(u)
	return hex.EncodeToString(b[:4])
}

func (u UUID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(u).String()), nil
}

func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return err
	}
	*u = UUID(parsed)
	return nil
}
