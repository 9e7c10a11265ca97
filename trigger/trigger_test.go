package trigger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTrigger(t *testing.T) {
	myTrigger := New[int]()
	require.False(t, myTrigger.IsActive())
	require.Equal(t, Idle[int](), myTrigger.State())

	myTrigger.Trigger(5)
	require.True(t, myTrigger.IsActive())
	require.Equal(t, 5, myTrigger.State().Value())
	require.NotEqual(t, NoIdentity, myTrigger.State().Identity())

	myTrigger.Cancel()
	require.False(t, myTrigger.IsActive())
	require.Equal(t, 0, myTrigger.State().Value())
}

func TestTrigger_DistinctDefaultIdentities(t *testing.T) {
	var myTrigger Trigger[string]

	myTrigger.Trigger("a")
	first := myTrigger.State()

	myTrigger.Trigger("a")
	second := myTrigger.State()

	require.Equal(t, first.Value(), second.Value())
	require.NotEqual(t, first.Identity(), second.Identity())
	require.NotEqual(t, first, second)
}

func TestTrigger_ExplicitIdentity(t *testing.T) {
	identity := uuid.New()

	var myTrigger Trigger[int]
	myTrigger.Trigger(1, WithIdentity(identity))
	first := myTrigger

	myTrigger.Trigger(1, WithIdentity(identity))
	require.Equal(t, first, myTrigger)
	require.Equal(t, identity, myTrigger.State().Identity())
}

func TestTrigger_CopiesAreSnapshots(t *testing.T) {
	var original Trigger[int]
	original.Trigger(1)

	snapshot := original
	original.Cancel()

	require.True(t, snapshot.IsActive())
	require.False(t, original.IsActive())
}

func TestTrigger_CancelFromIdle(t *testing.T) {
	var myTrigger Trigger[int]
	myTrigger.Cancel()

	require.Equal(t, New[int](), myTrigger)
}

func TestFire(t *testing.T) {
	var plain Plain
	Fire(&plain)

	require.True(t, plain.IsActive())
	require.True(t, plain.State().Value())
}

func TestSequentialIdentities(t *testing.T) {
	generator := SequentialIdentities()

	seen := make(map[Identity]struct{})
	for i := 0; i < 1000; i++ {
		identity := generator()
		require.NotEqual(t, NoIdentity, identity)

		_, exists := seen[identity]
		require.False(t, exists)
		seen[identity] = struct{}{}
	}

	var myTrigger Trigger[int]
	myTrigger.Trigger(1, WithIdentityGenerator(SequentialIdentities()))
	require.Equal(t, SequentialIdentities()(), myTrigger.State().Identity())
}

func TestState(t *testing.T) {
	require.Equal(t, "Idle", Idle[int]().String())

	identity := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	active := Active(42, identity)
	require.True(t, active.IsActive())
	require.Equal(t, "Active(value=42, identity=6ba7b810-9dad-11d1-80b4-00c04fd430c8)", active.String())

	require.True(t, Active(0, NoIdentity).IsActive())
}
