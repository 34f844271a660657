package pipeline_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ notekit.DomainLimiter = (*pipeline.DomainLimiter)(nil)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	// timeWait reports how long one Wait call blocked.
	timeWait := func(t *testing.T, l *pipeline.DomainLimiter, domain string) time.Duration {
		t.Helper()
		start := time.Now()
		require.NoError(t, l.Wait(context.Background(), domain))
		return time.Since(start)
	}

	t.Run("first request to a domain does not wait", func(t *testing.T) {
		t.Parallel()

		l := pipeline.NewDomainLimiter(10)

		assert.Less(t, timeWait(t, l, "example.com"), 50*time.Millisecond)
	})

	t.Run("second request to same domain waits for a token", func(t *testing.T) {
		t.Parallel()

		l := pipeline.NewDomainLimiter(10)
		timeWait(t, l, "example.com")

		assert.GreaterOrEqual(t, timeWait(t, l, "example.com"), 80*time.Millisecond)
	})

	t.Run("domains are limited independently", func(t *testing.T) {
		t.Parallel()

		l := pipeline.NewDomainLimiter(10)
		timeWait(t, l, "example.com")

		assert.Less(t, timeWait(t, l, "blog.example.org"), 50*time.Millisecond)
	})

	t.Run("returns context error while waiting", func(t *testing.T) {
		t.Parallel()

		l := pipeline.NewDomainLimiter(1)
		timeWait(t, l, "example.com")

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "example.com"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		l := pipeline.NewDomainLimiter(200)
		domains := []string{"a.example", "b.example", "c.example"}

		var wg sync.WaitGroup
		errs := make(chan error, 9)
		for i := range 9 {
			wg.Go(func() {
				errs <- l.Wait(context.Background(), domains[i%len(domains)])
			})
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
	})
}
