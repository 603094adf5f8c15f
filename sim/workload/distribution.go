package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueSampler generates non-negative integer samples (burst times, priorities).
type ValueSampler interface {
	Sample(rng *rand.Rand) int64
}

// ConstantSampler always returns the same value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// UniformSampler draws uniformly from the inclusive range [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// GaussianSampler produces clamped, rounded Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// ExponentialSampler produces exponentially-distributed values with the given mean.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	val := rng.ExpFloat64() * s.mean
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0
	}
	return int64(math.Round(val))
}

// NewValueSampler creates a ValueSampler from a DistSpec.
func NewValueSampler(spec DistSpec) (ValueSampler, error) {
	p := spec.Params
	switch spec.Type {
	case "constant":
		v, ok := p["value"]
		if !ok || v < 0 {
			return nil, fmt.Errorf("constant distribution requires non-negative 'value'")
		}
		return &ConstantSampler{value: int64(v)}, nil
	case "uniform":
		lo, hi := int64(p["min"]), int64(p["max"])
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("uniform distribution requires 0 <= min <= max, got [%d, %d]", lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil
	case "gaussian":
		lo, hi := int64(p["min"]), int64(p["max"])
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("gaussian distribution requires 0 <= min <= max, got [%d, %d]", lo, hi)
		}
		if p["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian distribution requires non-negative 'std_dev'")
		}
		return &GaussianSampler{mean: p["mean"], stdDev: p["std_dev"], min: lo, max: hi}, nil
	case "exponential":
		if p["mean"] <= 0 {
			return nil, fmt.Errorf("exponential distribution requires positive 'mean'")
		}
		return &ExponentialSampler{mean: p["mean"]}, nil
	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
