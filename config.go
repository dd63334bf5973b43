package goCell

// Config defines a public type used by goCell APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goCell APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
	Sink       AuditSink
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goCell APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration applied by [WithToken]: metrics
// enabled, audit disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// Value copy is sufficient: the only reference field is the audit sink,
	// which is shared with the caller intentionally.
	return cfg
}

func normalizeConfig(cfg *Config) {
	if cfg.Audit.BufferSize <= 0 {
		cfg.Audit.BufferSize = 1
	}
}
