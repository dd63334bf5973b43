package goCell

import "github.com/MrEthical07/goCell/internal"

// WithToken mints a fresh brand, hands the paired [Token] to routine, and
// returns routine's result. The routine runs exactly once, synchronously.
//
// The brand is guaranteed distinct from the brand of every other invocation,
// including textually identical ones. When the routine returns (or panics),
// the token is retired: any token or accessor reference that escaped the
// routine fails every subsequent operation with [ErrTokenRetired], so a
// brand cannot remain usable outside its scope. A panic in the routine
// propagates unchanged.
//
//	Docs: docs/scope.md
func WithToken[R any](routine func(*Token) R) R {
	return WithTokenConfig(defaultConfig(), routine)
}

// WithTokenConfig is [WithToken] with per-scope audit and metrics
// configuration. The audit dispatcher, when enabled, is drained and closed
// after the token retires, on every exit path.
func WithTokenConfig[R any](cfg Config, routine func(*Token) R) R {
	cfg = cloneConfig(cfg)
	normalizeConfig(&cfg)

	tok := &Token{
		brand:   internal.NewBrandID(),
		metrics: NewMetrics(cfg.Metrics),
		audit:   newAuditDispatcher(cfg.Audit),
	}

	// Retire first; the dispatcher refuses new events once closed.
	defer func() {
		tok.retire()
		tok.audit.Close()
	}()

	return routine(tok)
}
