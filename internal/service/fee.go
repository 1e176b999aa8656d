// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// numberOfDays returns the number of whole days elapsed between dateOut and
// dateReturned. A return before checkout yields zero.
func numberOfDays(dateOut, dateReturned time.Time) int {
	elapsed := dateReturned.Sub(dateOut)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed / day)
}

// rentalFee multiplies days by dailyRate and rounds to cents.
func rentalFee(days int, dailyRate float64) float64 {
	return math.Round(float64(days)*dailyRate*100) / 100
}
