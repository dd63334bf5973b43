package goCell

import (
	"sync"
	"sync/atomic"

	"github.com/MrEthical07/goCell/internal"
)

// Token is the capability to access every [Cell] sharing its brand. Exactly
// one token exists per [WithToken] invocation; it cannot be copied usefully
// (all state sits behind the pointer) and cannot be constructed outside a
// scope.
//
// Access flows through accessors checked out of the token. Any number of
// [SharedAccessor] values may be live at once; an [ExclusiveAccessor] must be
// alone. Conflicting checkouts fail immediately with [ErrSharedHeld] or
// [ErrExclusiveHeld] rather than blocking.
//
//	Docs: docs/token.md
type Token struct {
	brand internal.BrandID

	mu      sync.Mutex
	readers int
	writer  bool

	retired atomic.Bool

	metrics *Metrics
	audit   *auditDispatcher
}

// Brand returns the scope identity string carried by the token. It exists
// for diagnostics and audit correlation only; brands carry no meaning
// outside their scope.
func (t *Token) Brand() string {
	if t == nil {
		return ""
	}
	return t.brand.String()
}

// BorrowShared checks a read-only accessor out of the token. It fails with
// [ErrExclusiveHeld] while an exclusive accessor is live and with
// [ErrTokenRetired] once the minting scope has exited. Shared accessors may
// coexist without limit.
func (t *Token) BorrowShared() (*SharedAccessor, error) {
	if t == nil {
		return nil, ErrNilToken
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.retired.Load() {
		t.report(ViolationUseAfterRetire, "BorrowShared", "")
		t.count(MetricUseAfterRetire)
		return nil, ErrTokenRetired
	}
	if t.writer {
		t.report(ViolationBorrowConflict, "BorrowShared", "exclusive accessor live")
		t.count(MetricBorrowConflict)
		return nil, ErrExclusiveHeld
	}

	t.readers++
	t.count(MetricSharedBorrow)

	return &SharedAccessor{token: t, brand: t.brand}, nil
}

// BorrowExclusive checks the write accessor out of the token. It fails with
// [ErrSharedHeld] while any shared accessor is live, [ErrExclusiveHeld]
// while another exclusive accessor is live, and [ErrTokenRetired] once the
// minting scope has exited.
func (t *Token) BorrowExclusive() (*ExclusiveAccessor, error) {
	if t == nil {
		return nil, ErrNilToken
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.retired.Load() {
		t.report(ViolationUseAfterRetire, "BorrowExclusive", "")
		t.count(MetricUseAfterRetire)
		return nil, ErrTokenRetired
	}
	if t.writer {
		t.report(ViolationBorrowConflict, "BorrowExclusive", "exclusive accessor live")
		t.count(MetricBorrowConflict)
		return nil, ErrExclusiveHeld
	}
	if t.readers > 0 {
		t.report(ViolationBorrowConflict, "BorrowExclusive", "shared accessor live")
		t.count(MetricBorrowConflict)
		return nil, ErrSharedHeld
	}

	t.writer = true
	t.count(MetricExclusiveBorrow)

	return &ExclusiveAccessor{token: t, brand: t.brand}, nil
}

// Do checks out a shared accessor, runs fn with it, and releases it on every
// exit path including panic.
func (t *Token) Do(fn func(*SharedAccessor) error) error {
	acc, err := t.BorrowShared()
	if err != nil {
		return err
	}
	defer acc.Release()

	return fn(acc)
}

// DoExclusive checks out the exclusive accessor, runs fn with it, and
// releases it on every exit path including panic.
func (t *Token) DoExclusive(fn func(*ExclusiveAccessor) error) error {
	acc, err := t.BorrowExclusive()
	if err != nil {
		return err
	}
	defer acc.Release()

	return fn(acc)
}

// AuditDropped reports how many violation events the scope's audit
// dispatcher discarded under buffer pressure. Zero when audit is disabled.
func (t *Token) AuditDropped() uint64 {
	if t == nil {
		return 0
	}
	return t.audit.Dropped()
}

// MetricsSnapshot returns the per-scope counters. The zero snapshot is
// returned when metrics are disabled for the scope.
func (t *Token) MetricsSnapshot() MetricsSnapshot {
	if t == nil {
		return MetricsSnapshot{}
	}
	return t.metrics.Snapshot()
}

// retire permanently disables the token. Live accessors start failing their
// next grant check; releases of already-live accessors remain harmless.
func (t *Token) retire() {
	if t == nil {
		return
	}
	t.retired.Store(true)
}

func (t *Token) count(id MetricID) {
	if t == nil {
		return
	}
	t.metrics.Inc(id)
}

func (t *Token) report(kind ViolationKind, op, detail string) {
	if t == nil || t.audit == nil {
		return
	}
	t.audit.Record(kind, t.brand.String(), op, detail)
}

/*
====================================
ACCESSORS
====================================
*/

// Accessor is satisfied by [SharedAccessor] and [ExclusiveAccessor]. Read
// operations accept either; write operations require the concrete
// [ExclusiveAccessor]. No third implementation can exist.
type Accessor interface {
	// Mode reports whether the accessor grants shared or exclusive access.
	Mode() AccessMode

	grant() (internal.BrandID, error)
	owner() *Token
}

// SharedAccessor permits read-only access to every cell of its brand. It is
// valid from checkout until [SharedAccessor.Release] or scope exit,
// whichever comes first.
type SharedAccessor struct {
	token    *Token
	brand    internal.BrandID
	released atomic.Bool
}

// Mode returns [ModeShared].
func (a *SharedAccessor) Mode() AccessMode { return ModeShared }

// Release returns the accessor to the token. Idempotent; the accessor is
// unusable afterwards.
func (a *SharedAccessor) Release() {
	if a == nil || !a.released.CompareAndSwap(false, true) {
		return
	}

	a.token.mu.Lock()
	a.token.readers--
	a.token.mu.Unlock()
}

func (a *SharedAccessor) grant() (internal.BrandID, error) {
	if a == nil {
		return internal.BrandID{}, ErrNilAccessor
	}
	if a.released.Load() {
		a.token.report(ViolationUseAfterRelease, "grant", "shared accessor")
		return internal.BrandID{}, ErrAccessorReleased
	}
	if a.token.retired.Load() {
		a.token.report(ViolationUseAfterRetire, "grant", "shared accessor")
		a.token.count(MetricUseAfterRetire)
		return internal.BrandID{}, ErrTokenRetired
	}
	return a.brand, nil
}

func (a *SharedAccessor) owner() *Token {
	if a == nil {
		return nil
	}
	return a.token
}

// ExclusiveAccessor permits read and write access to every cell of its
// brand. While it is live no other accessor to the same token can exist.
type ExclusiveAccessor struct {
	token    *Token
	brand    internal.BrandID
	released atomic.Bool
}

// Mode returns [ModeExclusive].
func (a *ExclusiveAccessor) Mode() AccessMode { return ModeExclusive }

// Release returns the accessor to the token. Idempotent; the accessor is
// unusable afterwards.
func (a *ExclusiveAccessor) Release() {
	if a == nil || !a.released.CompareAndSwap(false, true) {
		return
	}

	a.token.mu.Lock()
	a.token.writer = false
	a.token.mu.Unlock()
}

func (a *ExclusiveAccessor) grant() (internal.BrandID, error) {
	if a == nil {
		return internal.BrandID{}, ErrNilAccessor
	}
	if a.released.Load() {
		a.token.report(ViolationUseAfterRelease, "grant", "exclusive accessor")
		return internal.BrandID{}, ErrAccessorReleased
	}
	if a.token.retired.Load() {
		a.token.report(ViolationUseAfterRetire, "grant", "exclusive accessor")
		a.token.count(MetricUseAfterRetire)
		return internal.BrandID{}, ErrTokenRetired
	}
	return a.brand, nil
}

func (a *ExclusiveAccessor) owner() *Token {
	if a == nil {
		return nil
	}
	return a.token
}
