package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	predictOccupancy "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/logger"
)

type stubForecaster struct {
	result *domain.ForecastResult
	err    error
}

func (f stubForecaster) Execute(context.Context, *predictOccupancy.Request) (*domain.ForecastResult, error) {
	return f.result, f.err
}

type recordingPublisher struct {
	mu        sync.Mutex
	predicted []float64
	failures  int
}

func (p *recordingPublisher) SetForecast(predicted, _ float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.predicted = append(p.predicted, predicted)
}

func (p *recordingPublisher) ForecastFailed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures++
}

type flushCounter struct {
	mu sync.Mutex
	n  int
}

func (f *flushCounter) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
}

func TestScheduler_TickPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	flush := &flushCounter{}
	s := New(stubForecaster{result: &domain.ForecastResult{TargetPeriod: "2025-06", PredictedRate: 42}},
		pub, flush, time.Hour, logger.NewNop())

	s.tick(context.Background())

	assert.Equal(t, []float64{42}, pub.predicted)
	assert.Equal(t, 1, flush.n)
	assert.Zero(t, pub.failures)
}

func TestScheduler_TickFailure(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(stubForecaster{err: errors.New("db down")}, pub, nil, time.Hour, logger.NewNop())

	s.tick(context.Background())

	assert.Empty(t, pub.predicted)
	assert.Equal(t, 1, pub.failures)
}

func TestScheduler_StartRunsUntilCancelled(t *testing.T) {
	pub := &recordingPublisher{}
	s := New(stubForecaster{result: &domain.ForecastResult{PredictedRate: 10}}, pub, nil, 10*time.Millisecond, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.predicted) >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
