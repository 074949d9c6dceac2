// utils/money.go
package utils

import "math"

// Round2 rounds a monetary amount to two decimal places, half away from
// zero.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
