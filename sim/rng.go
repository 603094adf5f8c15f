// Seeded random streams for workload generation.

package sim

import (
	"hash/fnv"
	"math/rand"
)

// Stream names used by the workload generator.
const (
	SubsystemArrivals   = "arrivals"
	SubsystemBursts     = "bursts"
	SubsystemPriorities = "priorities"
)

// PartitionedRNG hands out one *rand.Rand per named stream, all derived from a
// single seed. Drawing from one stream never advances another.
// Not safe for concurrent use.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates the stream set for seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// The arrivals stream is seeded with the seed itself, so arrival sequences
// match a plain rand.NewSource(seed).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(streamSeed(p.seed, name)))
	p.streams[name] = rng
	return rng
}

func streamSeed(seed int64, name string) int64 {
	if name == SubsystemArrivals {
		return seed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
