package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	runs map[string][]error
}

func (r *recorder) RecordJobRun(job string, err error) {
	if r.runs == nil {
		r.runs = map[string][]error{}
	}
	r.runs[job] = append(r.runs[job], err)
}

func TestScheduler_AddRejectsBadSpec(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := New(log, nil)
	require.NoError(t, s.Add("weekly", "0 9 * * 1", func(context.Context) error { return nil }))
	require.Error(t, s.Add("broken", "every monday", func(context.Context) error { return nil }))
}

func TestScheduler_RunLogsFailure(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	rec := &recorder{}
	s := New(log, rec)

	boom := errors.New("smtp down")
	s.Run("daily", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		require.True(t, ok)
		return boom
	})
	s.Run("daily", func(context.Context) error { return nil })

	require.Equal(t, []error{boom, nil}, rec.runs["daily"])
	require.Len(t, hook.Entries, 2)
	require.Equal(t, logrus.ErrorLevel, hook.Entries[0].Level)
	require.Equal(t, boom, hook.Entries[0].Data[logrus.ErrorKey])
	require.Equal(t, logrus.InfoLevel, hook.Entries[1].Level)
}

func TestScheduler_StartStop(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	s := New(log, nil)
	s.Start()
	s.Stop(context.Background())
}

func TestScheduler_SkipsOverlappingRun(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	rec := &recorder{}
	s := New(log, rec)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	j := s.wrap("weekly", func(context.Context) error {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}
		return nil
	})

	done := make(chan struct{})
	go func() {
		j.Run()
		close(done)
	}()
	<-started

	// second tick while the first is still blocked
	j.Run()
	require.Equal(t, int32(1), calls.Load())

	close(release)
	<-done
	j.Run()
	require.Equal(t, int32(2), calls.Load())
	require.Len(t, rec.runs["weekly"], 2)
}
