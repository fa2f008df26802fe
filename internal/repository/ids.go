package repository

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// IDGenerator produces candidate identifiers. The store retries on collision,
// so generators only need to be random enough, not unique.
type IDGenerator interface {
	StudentID() string
	TeacherID() string
	EmployeeCode(year int) string
}

// RandomIDGenerator issues ids in the school's human-readable formats:
// S12345, T12345 and EMP2024-123.
type RandomIDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomIDGenerator seeds a generator. A zero seed uses the clock.
func NewRandomIDGenerator(seed int64) *RandomIDGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomIDGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// StudentID returns S followed by five digits.
func (g *RandomIDGenerator) StudentID() string {
	return fmt.Sprintf("S%d", g.intn(90000)+10000)
}

// TeacherID returns T followed by five digits.
func (g *RandomIDGenerator) TeacherID() string {
	return fmt.Sprintf("T%d", g.intn(90000)+10000)
}

// EmployeeCode returns EMP<year>-<three digits>.
func (g *RandomIDGenerator) EmployeeCode(year int) string {
	return fmt.Sprintf("EMP%d-%d", year, g.intn(900)+100)
}

func (g *RandomIDGenerator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}
