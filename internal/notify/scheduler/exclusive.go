package scheduler

import (
	"context"
	"sync"

	ndomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify/domain"
)

var _ ndomain.Job = (*Exclusive)(nil)

// Exclusive allows at most one run of the wrapped job at a time within the process.
// The cron schedule and the manual trigger share one Exclusive per job.
type Exclusive struct {
	job ndomain.Job
	mu  sync.Mutex
}

func NewExclusive(job ndomain.Job) *Exclusive { return &Exclusive{job: job} }

func (e *Exclusive) Name() string { return e.job.Name() }

// TryRun runs the job unless a run is already in progress, in which case ok is false.
func (e *Exclusive) TryRun(ctx context.Context) (res ndomain.Result, ok bool) {
	if !e.mu.TryLock() {
		return ndomain.Result{Job: e.job.Name()}, false
	}
	defer e.mu.Unlock()
	return e.job.Run(ctx), true
}

// Run is TryRun for callers that only need the result. A skipped run reports
// success=false with an explanatory error.
func (e *Exclusive) Run(ctx context.Context) ndomain.Result {
	res, ok := e.TryRun(ctx)
	if !ok {
		res.Error = "a " + e.job.Name() + " run is already in progress"
	}
	return res
}
