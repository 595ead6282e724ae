package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one scheduled task; a returned error is logged and not retried.
type Job func(ctx context.Context) error

type Recorder interface {
	RecordJobRun(job string, err error)
}

type Scheduler struct {
	cron    *cron.Cron
	chain   cron.Chain
	log     logrus.FieldLogger
	rec     Recorder
	timeout time.Duration
}

func New(log logrus.FieldLogger, rec Recorder) *Scheduler {
	cl := cronLogger{log}
	return &Scheduler{
		cron: cron.New(),
		// a run still in flight makes the next tick of the same job a no-op
		chain:   cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		log:     log,
		rec:     rec,
		timeout: 10 * time.Minute,
	}
}

// Add registers job under a standard 5-field cron spec.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if _, err := s.cron.AddJob(spec, s.wrap(name, job)); err != nil {
		return fmt.Errorf("scheduler: job %s spec %q: %w", name, spec, err)
	}
	s.log.WithFields(logrus.Fields{"job": name, "spec": spec}).Info("job scheduled")
	return nil
}

func (s *Scheduler) wrap(name string, job Job) cron.Job {
	return s.chain.Then(cron.FuncJob(func() { s.Run(name, job) }))
}

// Run executes job once, logging and recording the outcome.
func (s *Scheduler) Run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	err := job(ctx)
	if s.rec != nil {
		s.rec.RecordJobRun(name, err)
	}
	entry := s.log.WithFields(logrus.Fields{"job": name, "took": time.Since(start).String()})
	if err != nil {
		entry.WithError(err).Error("job failed")
		return
	}
	entry.Info("job finished")
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop waits for running jobs or ctx, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

type cronLogger struct{ log logrus.FieldLogger }

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(kv []any) logrus.Fields {
	out := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		out[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return out
}
