package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_renewDueDate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		dueDate      time.Time
		durationDays int
		want         time.Time
	}{
		{
			name:         "due date in the future extends from the due date",
			dueDate:      now.AddDate(0, 0, 3),
			durationDays: 7,
			want:         now.AddDate(0, 0, 10),
		},
		{
			name:         "overdue loan extends from now",
			dueDate:      now.AddDate(0, 0, -4),
			durationDays: 7,
			want:         now.AddDate(0, 0, 7),
		},
		{
			name:         "due exactly now extends from now",
			dueDate:      now,
			durationDays: 14,
			want:         now.AddDate(0, 0, 14),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := renewDueDate(tt.dueDate, now, tt.durationDays)
			require.Equal(t, tt.want, got)
			require.True(t, got.After(tt.dueDate))
		})
	}
}
