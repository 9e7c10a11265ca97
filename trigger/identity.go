package trigger

import (
	"encoding/binary"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Identity is the opaque token that distinguishes one triggering event from another, independent of the value that
// is carried along. The zero value (uuid.Nil) is reserved for the idle state.
type Identity = uuid.UUID

// NoIdentity is the identity of the idle state.
var NoIdentity = uuid.Nil

// IdentityGenerator creates identities. Two identities returned by the same generator must never be equal, and none
// of them must be NoIdentity.
type IdentityGenerator func() Identity

// RandomIdentities is the default IdentityGenerator that creates random (version 4) UUIDs.
func RandomIdentities() IdentityGenerator {
	return uuid.New
}

// SequentialIdentities returns an IdentityGenerator that derives identities from a monotonic counter. The generated
// identities are stable across runs, which makes them useful in tests and logs.
func SequentialIdentities() IdentityGenerator {
	var counter atomic.Uint64

	return func() (identity Identity) {
		binary.BigEndian.PutUint64(identity[8:], counter.Inc())

		return identity
	}
}
