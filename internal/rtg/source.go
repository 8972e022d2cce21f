package rtg

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source picks uniformly distributed indices.
type Source interface {
	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default uses the math/rand/v2 top-level generator, which is safe for concurrent use.
var Default Source = globalSource{}

// lockedSource serialises access to a non-thread-safe *rand.Rand.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a deterministic Source. It is safe for concurrent use,
// but the sequence then depends on scheduling.
func NewSeeded(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

type cryptoReader struct{}

func (cryptoReader) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic(err) // crypto/rand.Read не возвращает ошибок на поддерживаемых платформах
	}
	return binary.LittleEndian.Uint64(buf[:])
}

type cryptoSource struct {
	r *rand.Rand
}

func (s cryptoSource) IntN(n int) int { return s.r.IntN(n) }

// Crypto draws from crypto/rand. Safe for concurrent use.
var Crypto Source = cryptoSource{r: rand.New(cryptoReader{})}

// ParseSource resolves a source name: "default", "crypto" or "seeded".
// seed is used only by "seeded".
func ParseSource(name string, seed uint64) (Source, bool) {
	switch name {
	case "", "default":
		return Default, true
	case "crypto":
		return Crypto, true
	case "seeded":
		return NewSeeded(seed), true
	default:
		return nil, false
	}
}
