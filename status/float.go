package status

import (
	"math"
	"sync/atomic"
)

// Float64 is an atomic float64 in the style of the sync/atomic types
type Float64 struct {
	v atomic.Uint64
}

func (f *Float64) Load() float64 { return math.Float64frombits(f.v.Load()) }

func (f *Float64) Store(x float64) { f.v.Store(math.Float64bits(x)) }
