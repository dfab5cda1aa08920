package calculation

import (
	"math/rand"
	"time"
)

// nowFunc pins the calendar year of the first projected year. Tests replace it.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// NewSeededSource returns a reproducible UniformSource. Path i of a Monte
// Carlo run draws from NewSeededSource(seed + i).
func NewSeededSource(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed))
}
