package dialog

import "testing"

func TestNewStorePicksOwner(t *testing.T) {
	if newStore(nil, nil).controlled() {
		t.Fatalf("no open value should give an internal store")
	}
	v := false
	if !newStore(&v, nil).controlled() {
		t.Fatalf("an open value should give an external store")
	}
}

func TestInternalStoreStartsClosed(t *testing.T) {
	s := newStore(nil, nil)
	if s.read() {
		t.Fatalf("expected closed")
	}
	s.write(true)
	if !s.read() {
		t.Fatalf("expected open after write")
	}
}

func TestExternalStoreOnlyForwards(t *testing.T) {
	var got []bool
	v := true
	s := newStore(&v, func(b bool) { got = append(got, b) })

	s.write(false)
	if !s.read() {
		t.Fatalf("external store must not change on write")
	}
	if len(got) != 1 || got[0] {
		t.Fatalf("expected forwarded false, got %v", got)
	}

	s.(*externalStore).supply(false)
	if s.read() {
		t.Fatalf("expected supplied value")
	}

	// The caller's variable is copied, not aliased.
	v = true
	if s.read() {
		t.Fatalf("store should not alias the caller's variable")
	}
}
