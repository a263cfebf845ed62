package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KotFed0t/crypto_dashboard/utils"
	"github.com/stretchr/testify/assert"
)

func TestIntervalJob_StartsImmediately(t *testing.T) {
	s := New()
	defer s.Stop()

	rqIDs := make(chan string, 1)
	s.NewIntervalJob("test job", func(ctx context.Context) error {
		select {
		case rqIDs <- utils.GetRequestIDFromCtx(ctx):
		default:
		}
		return nil
	}, time.Hour, true)
	s.Start()

	select {
	case rqID := <-rqIDs:
		assert.NotEmpty(t, rqID)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start immediately")
	}
}

func TestIntervalJob_SurvivesPanicsAndErrors(t *testing.T) {
	s := New()
	defer s.Stop()

	var runs atomic.Int32
	s.NewIntervalJob("flaky job", func(ctx context.Context) error {
		n := runs.Add(1)
		if n == 1 {
			panic("boom")
		}
		return errors.New("still failing")
	}, 20*time.Millisecond, true)
	s.Start()

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
}
