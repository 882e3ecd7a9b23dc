package store

import (
	"math/rand/v2"
	"time"
)

const (
	nameLength   = 10
	nameAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	DefaultMaxID  = 999999
	DefaultMinAge = 1
	DefaultMaxAge = 15
)

// Generator produces random records. IDs fall in [0, MaxID) and ages in
// [MinAge, MaxAge); both upper bounds are exclusive.
type Generator struct {
	MaxID  int
	MinAge int
	MaxAge int

	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded from the runtime's entropy source.
func NewGenerator() *Generator {
	return NewSeededGenerator(rand.Uint64(), rand.Uint64())
}

// NewSeededGenerator returns a deterministic generator, mainly for tests.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{
		MaxID:  DefaultMaxID,
		MinAge: DefaultMinAge,
		MaxAge: DefaultMaxAge,
		rng:    rand.New(rand.NewPCG(seed1, seed2)),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for CreatedAt.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Record returns a new random record. IDs are not checked for uniqueness.
func (g *Generator) Record() Record {
	return Record{
		ID:        g.rng.IntN(g.MaxID),
		Name:      g.name(),
		Category:  Categories[g.rng.IntN(len(Categories))],
		Age:       g.MinAge + g.rng.IntN(g.MaxAge-g.MinAge),
		CreatedAt: g.now().UTC(),
	}
}

func (g *Generator) name() string {
	buf := make([]byte, nameLength)
	for i := range buf {
		buf[i] = nameAlphabet[g.rng.IntN(len(nameAlphabet))]
	}
	return string(buf)
}
