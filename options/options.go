// Package options contains a generic helper for the functional options paradigm.
package options

// Option is a function that configures an instance of T.
type Option[T any] func(*T)

// Apply applies the given options to the object and runs the optional init functions afterwards.
func Apply[T any](obj *T, opts []Option[T], optInitFunc ...func(instance *T)) *T {
	for _, opt := range opts {
		if opt != nil {
			opt(obj)
		}
	}

	for _, initFunc := range optInitFunc {
		initFunc(obj)
	}

	return obj
}
