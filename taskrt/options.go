package taskrt

// executorOptions holds configuration resolved at [New] time.
type executorOptions struct {
	logger           Logger
	allocatorCap     uint64
	infiniteSentinel Tick
}

// Option configures an [Executor] instance.
type Option interface {
	applyExecutor(*executorOptions)
}

type optionFunc func(*executorOptions)

func (f optionFunc) applyExecutor(opts *executorOptions) {
	f(opts)
}

// WithLogger attaches a structured [Logger] to the executor. Without this
// option the executor logs nothing.
func WithLogger(logger Logger) Option {
	return optionFunc(func(opts *executorOptions) {
		opts.logger = logger
	})
}

// WithAllocatorCap sets the cap of the executor's built-in
// [BoundedAllocator], available via [Executor.Allocator]. A cap of 0
// (the default) leaves the allocator unbounded.
func WithAllocatorCap(cap uint64) Option {
	return optionFunc(func(opts *executorOptions) {
		opts.allocatorCap = cap
	})
}

// WithInfiniteSentinel overrides the scheduling tick used to represent
// [Infinite] when pushing onto the ready queue. The default is the
// maximum [Tick] value; this only needs overriding in tests that want
// infinite-priority tasks to sort before a deliberately larger sentinel.
func WithInfiniteSentinel(tick Tick) Option {
	return optionFunc(func(opts *executorOptions) {
		opts.infiniteSentinel = tick
	})
}

func resolveOptions(opts []Option) *executorOptions {
	cfg := &executorOptions{
		infiniteSentinel: maxTick,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyExecutor(cfg)
	}
	return cfg
}
