package trigger

import (
	"github.com/iotaledger/tasktrigger/options"
)

// settings holds the optional parameters of a single call to Trigger.
type settings struct {
	identity  Identity
	generator IdentityGenerator
}

// resolveIdentity returns the explicit identity, or a fresh one created by the configured generator.
func (s *settings) resolveIdentity() Identity {
	if s.identity != NoIdentity {
		return s.identity
	}

	if s.generator != nil {
		if identity := s.generator(); identity != NoIdentity {
			return identity
		}
	}

	return RandomIdentities()()
}

// Option configures a call to Trigger.
type Option = options.Option[settings]

// WithIdentity sets an explicit identity for the triggering event. Triggering twice with the same identity (and
// value) does not restart an operation that is still running for it.
func WithIdentity(identity Identity) Option {
	return func(s *settings) {
		s.identity = identity
	}
}

// WithIdentityGenerator sets the generator that is used to create the identity if none was passed in explicitly.
func WithIdentityGenerator(generator IdentityGenerator) Option {
	return func(s *settings) {
		s.generator = generator
	}
}
