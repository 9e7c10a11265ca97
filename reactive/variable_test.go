package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariable(t *testing.T) {
	myInt := NewVariable[int]()

	updates := make([][2]int, 0)
	unsubscribe := myInt.OnUpdate(func(prevValue, newValue int) {
		updates = append(updates, [2]int{prevValue, newValue})
	})
	require.Equal(t, 1, myInt.Subscribers())

	require.Equal(t, 0, myInt.Set(1))
	require.Equal(t, 1, myInt.Set(1))
	require.Equal(t, 1, myInt.Compute(func(currentValue int) int { return currentValue + 1 }))
	require.Equal(t, 2, myInt.Get())

	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, updates)

	unsubscribe()
	require.Equal(t, 0, myInt.Subscribers())

	myInt.Set(3)
	require.Len(t, updates, 2)
}

func TestVariable_InitialValue(t *testing.T) {
	var invoked bool
	NewVariable[int]().OnUpdate(func(_, _ int) {
		invoked = true
	})
	require.False(t, invoked, "the zero value is not announced")

	myInt := NewVariable[int](7)
	require.Equal(t, 7, myInt.Get())

	var initialUpdate [2]int
	myInt.OnUpdate(func(prevValue, newValue int) {
		initialUpdate = [2]int{prevValue, newValue}
	})
	require.Equal(t, [2]int{0, 7}, initialUpdate)
}

func TestVariable_CallbackOrder(t *testing.T) {
	myString := NewVariable[string]()

	collected := make([]string, 0)
	for _, name := range []string{"a", "b", "c"} {
		name := name
		myString.OnUpdate(func(_, newValue string) {
			collected = append(collected, name+":"+newValue)
		})
	}

	myString.Set("x")
	require.Equal(t, []string{"a:x", "b:x", "c:x"}, collected)
}

func TestVariable_UnsubscribeWithinCallback(t *testing.T) {
	myInt := NewVariable[int]()

	var (
		calls       int
		unsubscribe func()
	)
	unsubscribe = myInt.OnUpdate(func(_, _ int) {
		calls++
		unsubscribe()
	})

	myInt.Set(1)
	myInt.Set(2)

	require.Equal(t, 1, calls)
	require.Equal(t, 0, myInt.Subscribers())
}

func TestVariable_ConcurrentWrites(t *testing.T) {
	counter := NewVariable[int]()

	var lastSeen int
	counter.OnUpdate(func(prevValue, newValue int) {
		assert.Equal(t, prevValue+1, newValue)
		lastSeen = newValue
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			counter.Compute(func(currentValue int) int { return currentValue + 1 })
		}()
	}
	wg.Wait()

	require.Equal(t, 100, counter.Get())
	require.Equal(t, 100, lastSeen)
}

func TestVariable_ConcurrentSubscriptions(t *testing.T) {
	counter := NewVariable[int]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			counter.Compute(func(currentValue int) int { return currentValue + 1 })
		}()

		go func() {
			defer wg.Done()

			var lastSeen int
			counter.OnUpdate(func(prevValue, newValue int) {
				// every subscriber sees a gapless sequence of values starting at its subscription
				assert.True(t, lastSeen == 0 || prevValue == lastSeen)
				assert.Greater(t, newValue, lastSeen)
				lastSeen = newValue
			})
		}()
	}
	wg.Wait()

	require.Equal(t, 20, counter.Get())
	require.Equal(t, 20, counter.Subscribers())
}
