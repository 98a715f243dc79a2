// internal/core/domain/timestamp_test.go
package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanmonodalex/partage-web/internal/core/domain"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "naive_with_microseconds",
			raw:  `"2025-08-31T12:00:00.123456"`,
			want: time.Date(2025, 8, 31, 12, 0, 0, 123456000, time.UTC),
		},
		{
			name: "naive_without_fraction",
			raw:  `"2025-08-31T12:00:00"`,
			want: time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339_utc",
			raw:  `"2025-08-31T12:00:00Z"`,
			want: time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339_with_offset",
			raw:  `"2025-08-31T14:00:00+02:00"`,
			want: time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "null_is_zero",
			raw:  `null`,
			want: time.Time{},
		},
		{
			name: "empty_string_is_zero",
			raw:  `""`,
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts domain.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}

	t.Run("garbage_is_an_error", func(t *testing.T) {
		var ts domain.Timestamp
		assert.Error(t, json.Unmarshal([]byte(`"pas une date"`), &ts))
	})
}
