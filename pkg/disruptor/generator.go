package disruptor

import "math"

// DefaultSeed is used when a caller does not pick a seed.
const DefaultSeed int64 = 1337

// Generator is a sine based scalar stream. It is reproducible across runs for a given seed and
// is not suitable for anything security related.
type Generator struct {
	counter float64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{counter: float64(seed)}
}

// Next returns a value in [0, 1).
func (g *Generator) Next() float64 {
	x := math.Sin(g.counter) * 10000
	g.counter++
	return x - math.Floor(x)
}
