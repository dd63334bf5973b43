package goCell

import (
	"errors"
	"testing"
)

func TestBorrowSharedManyCoexist(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		accs := make([]*SharedAccessor, 8)
		for i := range accs {
			acc, err := tok.BorrowShared()
			if err != nil {
				t.Fatalf("shared borrow %d failed: %v", i, err)
			}
			accs[i] = acc
		}
		for _, acc := range accs {
			acc.Release()
		}
		return struct{}{}
	})
}

func TestBorrowExclusiveBlocksShared(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow failed: %v", err)
		}

		if _, err := tok.BorrowShared(); !errors.Is(err, ErrExclusiveHeld) {
			t.Fatalf("expected ErrExclusiveHeld, got %v", err)
		}
		if _, err := tok.BorrowExclusive(); !errors.Is(err, ErrExclusiveHeld) {
			t.Fatalf("expected ErrExclusiveHeld on second exclusive, got %v", err)
		}

		excl.Release()

		if _, err := tok.BorrowShared(); err != nil {
			t.Fatalf("shared borrow after release failed: %v", err)
		}
		return struct{}{}
	})
}

func TestBorrowSharedBlocksExclusive(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		shared, err := tok.BorrowShared()
		if err != nil {
			t.Fatalf("shared borrow failed: %v", err)
		}

		if _, err := tok.BorrowExclusive(); !errors.Is(err, ErrSharedHeld) {
			t.Fatalf("expected ErrSharedHeld, got %v", err)
		}

		shared.Release()

		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow after release failed: %v", err)
		}
		excl.Release()
		return struct{}{}
	})
}

func TestReleaseIdempotent(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		acc, err := tok.BorrowShared()
		if err != nil {
			t.Fatalf("shared borrow failed: %v", err)
		}
		acc.Release()
		acc.Release()
		acc.Release()

		// A double release must not free another accessor's hold.
		other, err := tok.BorrowShared()
		if err != nil {
			t.Fatalf("borrow after double release failed: %v", err)
		}
		if _, err := tok.BorrowExclusive(); !errors.Is(err, ErrSharedHeld) {
			t.Fatalf("expected ErrSharedHeld while other accessor live, got %v", err)
		}
		other.Release()
		return struct{}{}
	})
}

func TestReleasedAccessorRejected(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		cell, err := NewCell(tok, 10)
		if err != nil {
			t.Fatalf("NewCell failed: %v", err)
		}

		shared, err := tok.BorrowShared()
		if err != nil {
			t.Fatalf("shared borrow failed: %v", err)
		}
		shared.Release()
		if _, err := cell.Read(shared); !errors.Is(err, ErrAccessorReleased) {
			t.Fatalf("expected ErrAccessorReleased, got %v", err)
		}

		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow failed: %v", err)
		}
		excl.Release()
		if _, err := cell.Write(excl); !errors.Is(err, ErrAccessorReleased) {
			t.Fatalf("expected ErrAccessorReleased on write, got %v", err)
		}
		return struct{}{}
	})
}

func TestDoReleasesOnReturn(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		err := tok.Do(func(acc *SharedAccessor) error {
			if _, err := tok.BorrowExclusive(); !errors.Is(err, ErrSharedHeld) {
				t.Fatalf("expected ErrSharedHeld inside Do, got %v", err)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}

		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow after Do failed: %v", err)
		}
		excl.Release()
		return struct{}{}
	})
}

func TestDoExclusivePropagatesError(t *testing.T) {
	wantErr := errors.New("routine failed")

	WithToken(func(tok *Token) struct{} {
		err := tok.DoExclusive(func(acc *ExclusiveAccessor) error {
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected routine error, got %v", err)
		}

		// The accessor must have been released on the error path.
		if err := tok.Do(func(*SharedAccessor) error { return nil }); err != nil {
			t.Fatalf("shared borrow after failed DoExclusive: %v", err)
		}
		return struct{}{}
	})
}

func TestDoExclusiveReleasesOnPanic(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic to propagate")
				}
			}()
			_ = tok.DoExclusive(func(acc *ExclusiveAccessor) error {
				panic("mutation failed")
			})
		}()

		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow after panicking DoExclusive: %v", err)
		}
		excl.Release()
		return struct{}{}
	})
}

func TestNilTokenBorrow(t *testing.T) {
	var tok *Token

	if _, err := tok.BorrowShared(); !errors.Is(err, ErrNilToken) {
		t.Fatalf("expected ErrNilToken, got %v", err)
	}
	if _, err := tok.BorrowExclusive(); !errors.Is(err, ErrNilToken) {
		t.Fatalf("expected ErrNilToken, got %v", err)
	}
}

func TestAccessorModes(t *testing.T) {
	WithToken(func(tok *Token) struct{} {
		shared, err := tok.BorrowShared()
		if err != nil {
			t.Fatalf("shared borrow failed: %v", err)
		}
		if shared.Mode() != ModeShared {
			t.Fatalf("expected ModeShared, got %v", shared.Mode())
		}
		shared.Release()

		excl, err := tok.BorrowExclusive()
		if err != nil {
			t.Fatalf("exclusive borrow failed: %v", err)
		}
		if excl.Mode() != ModeExclusive {
			t.Fatalf("expected ModeExclusive, got %v", excl.Mode())
		}
		excl.Release()
		return struct{}{}
	})
}
