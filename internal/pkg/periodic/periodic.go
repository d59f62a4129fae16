// Package periodic runs a function on a fixed interval until cancelled.
//
// A Task owns one robfig/cron scheduler and one context. Stop cancels the
// context, which is the task's cancellation token: the function observes it
// through ctx.Done and in-flight requests made with it are aborted. A stopped
// Task is not restarted; callers create a new one for a new key, so results of
// the old key can be told apart by the context they were issued with.
//
// Example:
//
//	task := periodic.NewTask("status_poller", 2*time.Second, func(ctx context.Context) {
//	    poll(ctx, packageID)
//	}, logger)
//	task.Start(false)
//	defer task.Stop()
package periodic

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Func is the body of a periodic task.
type Func func(ctx context.Context)

// Task is a cancellable periodic job. Runs never overlap: a tick that fires
// while the previous run is still going is skipped.
type Task struct {
	name     string
	interval time.Duration
	fn       Func
	logger   *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

// NewTask creates a stopped task. An interval below one millisecond is raised
// to one millisecond.
func NewTask(name string, interval time.Duration, fn Func, logger *slog.Logger) *Task {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Task{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger.With("component", name),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start schedules the task. With immediate set the first run happens right
// away instead of one interval later. Starting a started or stopped task is a
// no-op.
func (t *Task) Start(immediate bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started || t.ctx.Err() != nil {
		return
	}
	t.started = true

	cl := cronLogger{logger: t.logger}
	job := cron.NewChain(cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(t.run))

	t.cron = cron.New(cron.WithLogger(cl))
	t.cron.Schedule(every(t.interval), job)
	t.cron.Start()

	if immediate {
		go job.Run()
	}
}

// Stop cancels the task's context and unschedules it. It does not wait for a
// running invocation, so it is safe to call from inside the task itself.
func (t *Task) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancel()
	if t.cron != nil {
		t.cron.Stop()
		t.cron = nil
	}
}

// Done is closed once the task is stopped.
func (t *Task) Done() <-chan struct{} {
	return t.ctx.Done()
}

// Stopped reports whether Stop was called.
func (t *Task) Stopped() bool {
	return t.ctx.Err() != nil
}

func (t *Task) run() {
	if t.ctx.Err() != nil {
		return
	}
	t.fn(t.ctx)
}

// fixedInterval is a cron.Schedule with sub-second resolution. cron.Every
// rounds down to whole seconds.
type fixedInterval time.Duration

func every(d time.Duration) fixedInterval {
	return fixedInterval(d)
}

func (i fixedInterval) Next(t time.Time) time.Time {
	return t.Add(time.Duration(i))
}
