package bytelayout

import "fmt"

// StorageMode is the tagged access capability of a Storage handle.
type StorageMode uint8

const (
	// ModeOwned grants read and write access and allows extracting the
	// underlying buffer back out with IntoInner.
	ModeOwned StorageMode = iota
	// ModeMutable is an exclusive borrow: read and write access, no
	// extraction.
	ModeMutable
	// ModeReadOnly is a shared borrow: read access only. Any number of
	// read-only handles over the same region may coexist.
	ModeReadOnly
)

var modeNames = [...]string{
	ModeOwned:    "owned",
	ModeMutable:  "mutable",
	ModeReadOnly: "read-only",
}

func (m StorageMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Storage is a handle to the contiguous byte region a layout is bound to.
// The mode decides which accessors a View over this storage may construct:
// only owned and mutable handles permit writes. Storage never copies the
// region it wraps.
type Storage struct {
	buf      []byte
	mode     StorageMode
	released bool
}

// Own wraps a buffer the caller hands over to the storage. The buffer can
// be taken back with IntoInner.
func Own(buf []byte) *Storage {
	return &Storage{buf: buf, mode: ModeOwned}
}

// Borrow wraps a buffer as an exclusive mutable region. The caller keeps
// ownership but must not alias it with another mutable handle.
func Borrow(buf []byte) *Storage {
	return &Storage{buf: buf, mode: ModeMutable}
}

// BorrowReadOnly wraps a buffer as a shared immutable region. Views over it
// expose read accessors only.
func BorrowReadOnly(buf []byte) *Storage {
	return &Storage{buf: buf, mode: ModeReadOnly}
}

// Mode returns the handle's access capability.
func (s *Storage) Mode() StorageMode {
	return s.mode
}

// Len returns the length of the bound region in bytes.
func (s *Storage) Len() int {
	s.check()
	return len(s.buf)
}

// Bytes returns the bound region for reading. The slice aliases the
// caller's buffer; treat it as immutable when the mode is read-only.
func (s *Storage) Bytes() []byte {
	s.check()
	return s.buf
}

// MutableBytes returns the bound region for writing. Calling it on a
// read-only handle is a contract violation and panics.
func (s *Storage) MutableBytes() []byte {
	s.check()
	if !s.writable() {
		panic("bytelayout: mutable access to read-only storage")
	}
	return s.buf
}

// IntoInner consumes the handle and returns the owned buffer. Only valid
// for owned storage; the handle must not be used afterwards.
func (s *Storage) IntoInner() []byte {
	s.check()
	if s.mode != ModeOwned {
		panic(fmt.Sprintf("bytelayout: IntoInner on %s storage", s.mode))
	}
	buf := s.buf
	s.buf = nil
	s.released = true
	return buf
}

func (s *Storage) writable() bool {
	return s.mode != ModeReadOnly
}

func (s *Storage) check() {
	if s.released {
		panic("bytelayout: use of storage after IntoInner")
	}
}

// subregion narrows the handle to [lo, hi) without copying. The result is a
// borrow even when the parent is owned: a sub-range cannot be extracted on
// its own.
func (s *Storage) subregion(lo, hi int) *Storage {
	s.check()
	mode := ModeMutable
	if s.mode == ModeReadOnly {
		mode = ModeReadOnly
	}
	return &Storage{buf: s.buf[lo:hi:hi], mode: mode}
}
