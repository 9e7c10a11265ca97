package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type settings struct {
	name     string
	size     int
	resolved string
}

func withName(name string) Option[settings] {
	return func(s *settings) {
		s.name = name
	}
}

func withSize(size int) Option[settings] {
	return func(s *settings) {
		s.size = size
	}
}

func TestApply(t *testing.T) {
	s := Apply(&settings{size: 1}, []Option[settings]{withName("a"), nil, withSize(3)}, func(s *settings) {
		s.resolved = s.name
	})

	require.Equal(t, "a", s.name)
	require.Equal(t, 3, s.size)
	require.Equal(t, "a", s.resolved)
}
