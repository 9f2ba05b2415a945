package cart

import (
	"context"
	"encoding/json"
)

// Storage persists one session's serialized cart blob. Load returns
// ok=false when nothing has been stored yet.
type Storage interface {
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, data []byte) error
}

// Backend stores cart blobs for many sessions under one key each.
type Backend interface {
	Load(ctx context.Context, sessionID string) ([]byte, bool, error)
	Save(ctx context.Context, sessionID string, data []byte) error
}

// StorageFor binds a backend to a single session key.
func StorageFor(backend Backend, sessionID string) Storage {
	return &sessionStorage{backend: backend, sessionID: sessionID}
}

type sessionStorage struct {
	backend   Backend
	sessionID string
}

func (s *sessionStorage) Load(ctx context.Context) ([]byte, bool, error) {
	return s.backend.Load(ctx, s.sessionID)
}

func (s *sessionStorage) Save(ctx context.Context, data []byte) error {
	return s.backend.Save(ctx, s.sessionID, data)
}

// encodeLines serializes the line array. The blob intentionally carries
// no schema version; readers treat any shape mismatch as an empty cart.
func encodeLines(lines []Line) ([]byte, error) {
	return json.Marshal(lines)
}

// decodeLines deserializes a stored blob, failing soft: corrupt or
// unexpected payloads read as an empty cart.
func decodeLines(data []byte) []Line {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil
	}
	valid := lines[:0]
	for _, line := range lines {
		if line.ID == "" || line.Quantity < 1 {
			continue
		}
		valid = append(valid, line)
	}
	return valid
}
