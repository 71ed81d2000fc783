package taxmap

import (
	"fmt"

	"github.com/standardbeagle/taxmap/taxonomy"
)

// Option configures a Mapper at construction.
type Option func(*Mapper) error

// WithNodeThreshold sets the edit-similarity threshold for node matching.
// The default is taxonomy.DefaultNodeThreshold.
func WithNodeThreshold(threshold float64) Option {
	return func(m *Mapper) error {
		matcher, err := taxonomy.NewMatcher(threshold)
		if err != nil {
			return err
		}
		m.matcher = matcher
		return nil
	}
}

// WithParallelism bounds how many source paths MapAll processes at once. The
// default is the number of schedulable CPUs.
func WithParallelism(n int) Option {
	return func(m *Mapper) error {
		if n <= 0 {
			return fmt.Errorf("taxmap: parallelism must be positive, got %d", n)
		}
		m.parallelism = n
		return nil
	}
}
