// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// FormatTime renders a duration in seconds as "MM:SS".  Negative
// durations are treated as zero.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
