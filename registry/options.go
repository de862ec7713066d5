package registry

// Options configures a Registry beyond its Config.
type Options struct {
	name      string
	noMetrics bool
	seed      []uint64
}

type Option func(*Options)

// WithName labels the registry in logs and metrics. Defaults to DefaultName.
func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

// WithoutMetrics disables the prometheus counters for this registry.
// Typically used by short lived registries in tests and tools.
func WithoutMetrics() Option {
	return func(o *Options) {
		o.noMetrics = true
	}
}

// WithSeed adds ids to the registry at construction, in order. New fails if
// any of them is a duplicate.
func WithSeed(ids ...uint64) Option {
	return func(o *Options) {
		o.seed = append(o.seed, ids...)
	}
}

func newOptions(opts ...Option) Options {
	o := Options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
