package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberOfDays(t *testing.T) {
	dateOut := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		returned time.Time
		want     int
	}{
		{name: "same instant", returned: dateOut, want: 0},
		{name: "23 hours", returned: dateOut.Add(23 * time.Hour), want: 0},
		{name: "exactly one day", returned: dateOut.Add(24 * time.Hour), want: 1},
		{name: "next calendar day but less than 24h", returned: dateOut.Add(15 * time.Hour), want: 0},
		{name: "seven days", returned: dateOut.AddDate(0, 0, 7), want: 7},
		{name: "seven days and a half", returned: dateOut.Add(7*24*time.Hour + 12*time.Hour), want: 7},
		{name: "returned before checkout", returned: dateOut.Add(-time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numberOfDays(dateOut, tt.returned))
		})
	}
}

func TestRentalFee(t *testing.T) {
	assert.Equal(t, 14.0, rentalFee(7, 2))
	assert.Equal(t, 0.0, rentalFee(0, 2))
	assert.Equal(t, 3.3, rentalFee(3, 1.1))
	assert.Equal(t, 0.0, rentalFee(10, 0))
}
