package merge

// Config controls the tunable numeric policy of a merge: the
// ray-endpoint extrapolation multiplier and the Float2Equals
// coincidence epsilon. It is small enough to read from, and write to,
// a YAML file — see cmd/vormerge's 'config' subcommand.
type Config struct {
	// RayExtent is the multiplier applied to the combined site set's
	// max coordinate extent when building a far endpoint for an
	// unbounded edge. [Limit: > 0]
	RayExtent float64 `yaml:"ray_extent"`

	// Epsilon is the tolerance used to decide whether two chain
	// vertices coincide (a triple point).
	Epsilon float64 `yaml:"epsilon"`

	// EnableLog and EnableTimers gate MergeContext's log and timer
	// recording. Both are cheap no-ops when disabled.
	EnableLog    bool `yaml:"enable_log"`
	EnableTimers bool `yaml:"enable_timers"`
}

// DefaultConfig returns the usual merge configuration: a ray extent of
// 4x the site bounding box, and a 1e-6 Float2Equals epsilon.
func DefaultConfig() Config {
	return Config{
		RayExtent: 4,
		Epsilon:   1e-6,
		// Logging and timers are off by default: the merger is meant
		// to be cheap and silent on the hot path.
		EnableLog:    false,
		EnableTimers: false,
	}
}
