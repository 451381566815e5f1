package workflow

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Kavirubc/gh-tracker/pkg/models"
	"go.uber.org/zap"
)

// TitleChecker runs a duplicate check for a title
type TitleChecker interface {
	CheckTitle(ctx context.Context, title string) ([]models.Match, error)
}

// TitleCheck is the outcome of one edit's duplicate check
type TitleCheck struct {
	Seq     uint64
	Title   string
	Similar []models.Match
	Err     error
}

// TitleWatcher handles title edits as they happen. Every edit starts a
// check and cancels the previous one; a result is delivered only if no
// newer edit has arrived, so the latest edit always wins.
type TitleWatcher struct {
	checker  TitleChecker
	onResult func(TitleCheck)
	logger   *zap.Logger

	seq atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	last   TitleCheck

	deliverMu sync.Mutex
	wg        sync.WaitGroup
}

// NewTitleWatcher creates a watcher. onResult may be nil.
func NewTitleWatcher(checker TitleChecker, onResult func(TitleCheck), logger *zap.Logger) *TitleWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TitleWatcher{checker: checker, onResult: onResult, logger: logger}
}

// OnEdit starts a check for title and returns its sequence number
func (w *TitleWatcher) OnEdit(ctx context.Context, title string) uint64 {
	checkCtx, cancel := context.WithCancel(ctx)

	// Bump seq before cancelling so the cancelled check is already stale
	// when it returns.
	w.mu.Lock()
	seq := w.seq.Add(1)
	if w.cancel != nil {
		w.cancel()
	}
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()

		similar, err := w.checker.CheckTitle(checkCtx, title)
		w.deliver(TitleCheck{Seq: seq, Title: title, Similar: similar, Err: err})
	}()
	return seq
}

func (w *TitleWatcher) deliver(result TitleCheck) {
	w.deliverMu.Lock()
	defer w.deliverMu.Unlock()

	if result.Seq != w.seq.Load() {
		w.logger.Debug("Discarding stale title check", zap.Uint64("seq", result.Seq))
		return
	}
	if result.Err != nil {
		w.logger.Warn("Title check failed", zap.String("title", result.Title), zap.Error(result.Err))
	}

	w.mu.Lock()
	w.last = result
	w.mu.Unlock()

	if w.onResult != nil {
		w.onResult(result)
	}
}

// Latest returns the most recently delivered result
func (w *TitleWatcher) Latest() TitleCheck {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Wait blocks until all started checks have finished
func (w *TitleWatcher) Wait() {
	w.wg.Wait()
}

// Close cancels any in-flight check and waits for it
func (w *TitleWatcher) Close() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()
	w.Wait()
}
