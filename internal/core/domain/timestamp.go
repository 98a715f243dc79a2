// internal/core/domain/timestamp.go
package domain

import (
	"encoding/json"
	"time"
)

// naiveTimeLayout matches the backend's datetime serialization: ISO-8601
// without an offset, always UTC. time.Parse accepts the fractional seconds
// the backend appends.
const naiveTimeLayout = "2006-01-02T15:04:05"

// Timestamp is a time.Time that decodes the backend's datetime wire format.
// The backend emits naive ISO-8601 (e.g. "2025-08-31T12:00:00.123456");
// RFC 3339 is accepted as well. Embeds time.Time so formatting and
// comparison behave as usual.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse(naiveTimeLayout, raw)
	}
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}
