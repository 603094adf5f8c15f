package workload

import (
	"math"
	"math/rand"
)

// ArrivalSampler generates inter-arrival times in ticks for a process group.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time. Always >= 0;
	// 0 means the next process arrives on the same tick.
	SampleIAT(rng *rand.Rand) int64
}

// ConstantArrivalSampler spaces arrivals by a fixed interval.
type ConstantArrivalSampler struct {
	interval int64
}

func (s *ConstantArrivalSampler) SampleIAT(_ *rand.Rand) int64 {
	return s.interval
}

// PoissonSampler generates exponentially-distributed inter-arrival times,
// rounded to whole ticks.
type PoissonSampler struct {
	rate float64 // arrivals per tick
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	iat := math.Round(rng.ExpFloat64() / s.rate)
	if math.IsInf(iat, 0) || math.IsNaN(iat) || iat < 0 {
		return 0
	}
	return int64(iat)
}

// NewArrivalSampler creates an ArrivalSampler from a validated ArrivalSpec.
func NewArrivalSampler(spec ArrivalSpec) ArrivalSampler {
	switch spec.Process {
	case "poisson":
		return &PoissonSampler{rate: spec.Rate}
	default:
		return &ConstantArrivalSampler{interval: spec.Interval}
	}
}
