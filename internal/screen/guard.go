package screen

import (
	"sync/atomic"

	"github.com/heartmarshall/cinefluent/internal/domain"
)

// guard admits one mutating action at a time.
type guard struct {
	busy atomic.Bool
}

func (g *guard) acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	return nil
}

func (g *guard) release() { g.busy.Store(false) }

func (g *guard) InFlight() bool { return g.busy.Load() }
