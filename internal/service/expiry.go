package service

import (
	"math"
	"time"

	"github.com/paeslab/ensayo-api/internal/model"
)

// elapsedSeconds measures how long an attempt has been running against the
// database clock passed in by the caller.
func elapsedSeconds(attempt *model.Attempt, serverNow time.Time) int {
	return int(serverNow.Sub(attempt.StartedAt).Seconds())
}

// attemptExpired classifies an attempt as expired: a time limit exists, the
// elapsed time has reached it, and the attempt was never sealed. There is no
// background sweep; every mutating call evaluates this on demand and an
// expired attempt simply rejects further answers until someone finishes it.
func attemptExpired(attempt *model.Attempt, serverNow time.Time) bool {
	if attempt.TimeLimitSeconds == nil || attempt.Sealed() {
		return false
	}
	return elapsedSeconds(attempt, serverNow) >= *attempt.TimeLimitSeconds
}

// accuracyPct rounds score/total to one decimal place, 0 for empty attempts.
func accuracyPct(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(score)*1000/float64(total)) / 10
}
