package vtuprovider

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Simulator stands in for a real VTU upstream. It waits a configured latency
// window, then resolves success or failure from a uniform draw against the
// configured success rate.
type Simulator struct {
	cfg Config

	mu   sync.Mutex
	rand *rand.Rand
}

func NewSimulator(cfg Config) *Simulator {
	return NewSimulatorWithSource(cfg, rand.NewSource(time.Now().UnixNano()))
}

func NewSimulatorWithSource(cfg Config, src rand.Source) *Simulator {
	return &Simulator{cfg: cfg, rand: rand.New(src)}
}

func (s *Simulator) Purchase(ctx context.Context, req Request) (Response, error) {
	if s.cfg.Latency > 0 {
		timer := time.NewTimer(s.cfg.Latency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Response{}, ErrTimeout
			}
			return Response{}, ctx.Err()
		}
	}

	if s.draw() < s.cfg.SuccessRate {
		return Response{
			Status:      StatusSuccess,
			Reference:   req.Reference,
			ProviderRef: fmt.Sprintf("SIM-%s", req.Reference),
		}, nil
	}

	return Response{
		Status:    StatusFailed,
		Reference: req.Reference,
		Detail:    "declined by upstream",
	}, nil
}

func (s *Simulator) draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Float64()
}
