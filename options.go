package dstack

type Option func(s *DynamicStack)

// WithMaxCapacity caps growth at count elements. Values <= 0 or above
// MaxCapacity keep the default.
func WithMaxCapacity(count int) Option {
	limit := count
	if limit > MaxCapacity {
		limit = 0
	}
	return func(s *DynamicStack) {
		s.maxCapacity = limit
	}
}
