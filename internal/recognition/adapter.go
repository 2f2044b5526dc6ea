package recognition

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"go-refolio-backend/internal/domain"
)

// DefaultAttemptTimeout bounds a single invocation strategy.
const DefaultAttemptTimeout = 30 * time.Second

// Adapter owns a single lazily-initialized recognition worker and drives it
// through the fallback chain. One adapter is shared process-wide; the worker
// is initialized at most once and reused until Terminate.
type Adapter struct {
	mu      sync.Mutex
	sf      singleflight.Group
	factory func() Worker
	worker  Worker
	timeout time.Duration
	logger  *slog.Logger
	chain   []strategy
}

// NewAdapter builds an Adapter around a worker factory. The factory runs at
// most once, on first use. Non-positive timeout falls back to the default.
func NewAdapter(factory func() Worker, timeout time.Duration, logger *slog.Logger) *Adapter {
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		factory: factory,
		timeout: timeout,
		logger:  logger,
		chain:   invocationChain(),
	}
}

// Recognize validates nothing (validation happens upstream) and runs the
// fallback chain: each strategy is raced against the attempt timeout, and
// only when every strategy has failed does the call return a terminal
// RecognitionFailedError.
func (a *Adapter) Recognize(ctx context.Context, doc domain.RawDocument, onProgress func(domain.RecognitionProgress)) (*domain.RecognitionResult, error) {
	emit(onProgress, domain.StageInitializing, 10, "preparing recognition worker")

	worker, err := a.ensureWorker(ctx)
	if err != nil {
		return nil, &domain.RecognitionFailedError{Cause: err}
	}

	start := time.Now()
	var lastErr error
	for i, strat := range a.chain {
		emit(onProgress, domain.StageProcessing, 30+i*25, "attempting "+strat.name+" recognition")

		result, err := a.runAttempt(ctx, strat, worker, doc)
		if err != nil {
			a.logger.Warn("recognition attempt failed",
				"strategy", strat.name,
				"error", err,
			)
			lastErr = err
			continue
		}

		result.Strategy = strat.name
		result.Duration = time.Since(start)
		emit(onProgress, domain.StageComplete, 100, "recognition complete")
		return result, nil
	}

	return nil, &domain.RecognitionFailedError{Cause: lastErr}
}

// runAttempt races one strategy against the attempt timeout. The losing
// branch is abandoned, not interrupted: the engine offers no cooperative
// cancellation, so an overdue attempt keeps running in the background and
// its result is discarded.
func (a *Adapter) runAttempt(ctx context.Context, strat strategy, worker Worker, doc domain.RawDocument) (*domain.RecognitionResult, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type outcome struct {
		result *domain.RecognitionResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := strat.run(attemptCtx, worker, doc)
		done <- outcome{result, err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-attemptCtx.Done():
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, domain.ErrRecognitionTimeout
		}
		return nil, attemptCtx.Err()
	}
}

// ensureWorker lazily constructs and starts the shared worker. Concurrent
// first calls are collapsed into a single initialization.
func (a *Adapter) ensureWorker(ctx context.Context) (Worker, error) {
	a.mu.Lock()
	if a.worker != nil {
		worker := a.worker
		a.mu.Unlock()
		return worker, nil
	}
	a.mu.Unlock()

	v, err, _ := a.sf.Do("initialize", func() (interface{}, error) {
		worker := a.factory()
		if err := worker.Start(ctx); err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.worker = worker
		a.mu.Unlock()
		a.logger.Info("recognition worker initialized")
		return worker, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Worker), nil
}

// Terminate releases the worker. Safe to call any number of times,
// including before initialization.
func (a *Adapter) Terminate() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.worker == nil {
		return nil
	}
	err := a.worker.Close()
	a.worker = nil
	return err
}

func emit(onProgress func(domain.RecognitionProgress), stage string, percent int, message string) {
	if onProgress == nil {
		return
	}
	onProgress(domain.RecognitionProgress{Stage: stage, Percent: percent, Message: message})
}
