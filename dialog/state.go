package dialog

import "github.com/andareed/siftly-dialog/logging"

// State is the open/closed handle shared by every part of a dialog.
type State interface {
	IsOpen() bool
	RequestOpen(open bool)
}

// store is the backing strategy behind a dialog's State. It is picked once
// in New and never swapped.
type store interface {
	read() bool
	write(open bool)
	controlled() bool
}

// internalStore owns the flag. onChange, when set, is told about every write.
type internalStore struct {
	open     bool
	onChange func(bool)
}

func (s *internalStore) read() bool       { return s.open }
func (s *internalStore) controlled() bool { return false }

func (s *internalStore) write(open bool) {
	logging.Debugf("dialog: internal state %v -> %v", s.open, open)
	s.open = open
	if s.onChange != nil {
		s.onChange(open)
	}
}

// externalStore mirrors a value owned by the caller. Writes are only
// forwarded; the value moves when the caller calls supply.
type externalStore struct {
	open     bool
	onChange func(bool)
}

func (s *externalStore) read() bool       { return s.open }
func (s *externalStore) controlled() bool { return true }

func (s *externalStore) write(open bool) {
	if s.onChange == nil {
		logging.Debugf("dialog: controlled request open=%v dropped, no change handler", open)
		return
	}
	logging.Debugf("dialog: controlled request open=%v", open)
	s.onChange(open)
}

func (s *externalStore) supply(open bool) { s.open = open }

func newStore(open *bool, onChange func(bool)) store {
	if open != nil {
		return &externalStore{open: *open, onChange: onChange}
	}
	return &internalStore{onChange: onChange}
}
