package scope

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/tasktrigger/options"
)

func newTestScope(t *testing.T, opts ...options.Option[Scope]) *Scope {
	t.Helper()

	s, err := New(append([]options.Option[Scope]{WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(s.Teardown)

	return s
}

func TestScope_Go(t *testing.T) {
	s := newTestScope(t)

	var executed atomic.Bool
	task, err := s.Go("work", func(ctx context.Context) {
		executed.Store(true)
	})
	require.NoError(t, err)
	require.Equal(t, "work", task.Name())

	task.Wait()
	require.True(t, executed.Load())
	require.True(t, task.Finished())
	require.False(t, task.Cancelled())
	require.Eventually(t, func() bool { return s.TaskCount() == 0 }, time.Second, time.Millisecond)
}

func TestScope_CancelTask(t *testing.T) {
	s := newTestScope(t)

	started := make(chan struct{})
	task, err := s.Go("blocking", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	})
	require.NoError(t, err)

	<-started
	require.False(t, task.Finished())

	task.Cancel()
	task.Wait()
	require.True(t, task.Cancelled())
}

func TestScope_TeardownCancelsAndWaits(t *testing.T) {
	s, err := New(WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	var cleanedUp atomic.Int32
	started := make(chan struct{}, 3)
	for i := 0; i < 3; i++ {
		_, err := s.Go("blocking", func(ctx context.Context) {
			started <- struct{}{}
			<-ctx.Done()

			time.Sleep(10 * time.Millisecond)
			cleanedUp.Inc()
		})
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		<-started
	}
	require.Equal(t, 3, s.TaskCount())

	var hookCalls []int
	s.OnTeardown(func() { hookCalls = append(hookCalls, 1) })
	unsubscribe := s.OnTeardown(func() { hookCalls = append(hookCalls, 2) })
	s.OnTeardown(func() { hookCalls = append(hookCalls, 3) })
	unsubscribe()

	s.Teardown()
	require.Equal(t, int32(3), cleanedUp.Load())
	require.Equal(t, []int{1, 3}, hookCalls)
	require.True(t, s.IsTornDown())
	require.Error(t, s.Context().Err())

	// teardown is idempotent
	s.Teardown()

	_, err = s.Go("late", func(ctx context.Context) {})
	require.True(t, ierrors.Is(err, ErrTornDown))
}

func TestScope_ParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newTestScope(t, WithContext(ctx))

	task, err := s.Go("blocking", func(ctx context.Context) {
		<-ctx.Done()
	})
	require.NoError(t, err)

	cancel()
	task.Wait()
	require.True(t, task.Cancelled())

	_, err = s.Go("late", func(ctx context.Context) {})
	require.True(t, ierrors.Is(err, ErrTornDown))
}

func TestScope_LateTeardownHook(t *testing.T) {
	s, err := New(WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	s.Teardown()

	var called bool
	unsubscribe := s.OnTeardown(func() { called = true })
	require.True(t, called)

	unsubscribe()
}

func TestScope_PoolOverload(t *testing.T) {
	s := newTestScope(t, WithPoolSize(1))

	release := make(chan struct{})
	_, err := s.Go("first", func(ctx context.Context) {
		<-release
	})
	require.NoError(t, err)

	_, err = s.Go("second", func(ctx context.Context) {})
	require.True(t, ierrors.Is(err, ErrPoolOverload))

	close(release)
}

func TestScope_PanicIsRecovered(t *testing.T) {
	// the panic handler may log after the task was marked as done
	s := newTestScope(t, WithLogger(zap.NewNop()))

	task, err := s.Go("panicking", func(ctx context.Context) {
		panic("boom")
	})
	require.NoError(t, err)

	task.Wait()
	require.Eventually(t, func() bool { return s.TaskCount() == 0 }, time.Second, time.Millisecond)
}
