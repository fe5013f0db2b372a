package journey

import (
	"math/rand"
	"time"
)

// Milestone is a named checkpoint at a fixed progress position. Once passed
// it never reverts.
type Milestone struct {
	Name     string  `json:"name"`
	Position float64 `json:"position"`
	Passed   bool    `json:"passed"`
}

const (
	minStops       = 3
	maxStops       = 12
	secondsPerStop = 300

	// Intermediate stops are spread across the open interval (0.15, 0.85).
	firstStopOffset  = 0.15
	intermediateSpan = 0.70
)

// stopNames is the pool intermediate stops draw their display names from.
// A journey needs at most maxStops-2 of them.
var stopNames = []string{
	"Riverbend",
	"Oakhaven",
	"Millbrook",
	"Larkfield",
	"Stonebridge",
	"Fernhill",
	"Westmere",
	"Ashford Junction",
	"Clearwater",
	"Birchwood",
	"Hartsvale",
	"Elmsgate",
	"Northolt Green",
	"Maple Cross",
}

// NamePool supplies display names for intermediate stops.
type NamePool interface {
	// Pick returns n names drawn without replacement.
	Pick(n int) []string
}

type shuffledPool struct {
	rng *rand.Rand
}

func (p *shuffledPool) Pick(n int) []string {
	names := make([]string, len(stopNames))
	copy(names, stopNames)

	p.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	if n > len(names) {
		n = len(names)
	}

	return names[:n]
}

// SeededPool returns a deterministic name pool for reproducible journeys.
func SeededPool(seed int64) NamePool {
	return &shuffledPool{rng: rand.New(rand.NewSource(seed))}
}

func defaultPool() NamePool {
	return &shuffledPool{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// FixedPool returns a pool that hands out the given names in order. It is
// used when restoring a suspended journey whose stops were already named.
func FixedPool(names ...string) NamePool {
	return fixedPool(names)
}

type fixedPool []string

func (p fixedPool) Pick(n int) []string {
	if n > len(p) {
		n = len(p)
	}

	return append([]string(nil), p[:n]...)
}

// stopCount derives the number of milestones for a journey of the given
// duration: one stop per five minutes, bounded to between 3 and 12
// inclusive, always counting the origin and destination.
func stopCount(d time.Duration) int {
	n := int(d.Seconds())/secondsPerStop + 2

	if n < minStops {
		n = minStops
	}

	if n > maxStops {
		n = maxStops
	}

	return n
}

// generateMilestones builds the ordered checkpoint list for a journey. The
// origin sits at position 0 and is pre-marked passed; the destination sits
// at position 1. The remaining count-2 stops are evenly spaced.
func generateMilestones(
	count int,
	origin, destination string,
	pool NamePool,
) []Milestone {
	spacing := intermediateSpan / float64(count-1)

	milestones := make([]Milestone, 0, count)

	milestones = append(milestones, Milestone{
		Name:     origin,
		Position: 0,
		Passed:   true,
	})

	names := pool.Pick(count - 2)

	for i := 1; i <= count-2; i++ {
		name := ""
		if i-1 < len(names) {
			name = names[i-1]
		}

		milestones = append(milestones, Milestone{
			Name:     name,
			Position: firstStopOffset + spacing*float64(i),
		})
	}

	return append(milestones, Milestone{
		Name:     destination,
		Position: 1,
	})
}
