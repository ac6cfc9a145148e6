package queries

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"bounce-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = 1
)

var ErrInvalidCursor = errs.E(errs.KindInvalidRequest, "invalid cursor")

// Cursor is the opaque keyset position handed to dashboard clients.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// position is the decoded cursor: the created_at (microseconds, matching
// Postgres precision) and id of the last row on the previous page.
type position struct {
	Version int       `json:"v"`
	Micros  int64     `json:"t"`
	ID      uuid.UUID `json:"id"`
}

func EncodeAfterCursor(createdAt time.Time, id uuid.UUID) string {
	raw, _ := json.Marshal(position{Version: cursorVersion, Micros: createdAt.UnixMicro(), ID: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("empty cursor")
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	var pos position
	if err := json.Unmarshal(raw, &pos); err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "malformed cursor")
	}
	switch {
	case pos.Version != cursorVersion:
		return time.Time{}, uuid.Nil, errs.Newf("unsupported cursor version %d", pos.Version)
	case pos.Micros <= 0 || pos.ID == uuid.Nil:
		return time.Time{}, uuid.Nil, errs.New("incomplete cursor")
	}
	return time.UnixMicro(pos.Micros).UTC(), pos.ID, nil
}

// ValidateLimit clamps a page size into [1, MaxListLimit], defaulting zero
// and negatives.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
