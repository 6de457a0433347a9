package types

import (
	"errors"

	"github.com/cespare/xxhash"
)

// ErrShortState is returned by State.Err when a read ran past
// the end of the raw state data.
var ErrShortState = errors.New("state: read past end of data")

// State is a serialized snapshot of emulator components,
// used to save and restore execution between runs. Values
// are written and read back in the same order.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	short        bool   // set when a read ran past the end
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 32),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write64(value uint64) {
	for i := 0; i < 8; i++ {
		s.raw = append(s.raw, byte(value>>(8*i)))
	}
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

func (s *State) Read8() uint8 {
	if s.readPosition >= len(s.raw) {
		s.short = true
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	return uint16(s.Read8()) | uint16(s.Read8())<<8
}

func (s *State) Read64() uint64 {
	var value uint64
	for i := 0; i < 8; i++ {
		value |= uint64(s.Read8()) << (8 * i)
	}
	return value
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// Err returns ErrShortState if any read ran past the end of
// the data.
func (s *State) Err() error {
	if s.short {
		return ErrShortState
	}
	return nil
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}

// Fingerprint returns a 64-bit hash of the raw state data.
// Two components in the same state produce the same
// fingerprint.
func (s *State) Fingerprint() uint64 {
	return xxhash.Sum64(s.raw)
}

// Fingerprint saves st into a fresh State and returns its
// fingerprint.
func Fingerprint(st Stater) uint64 {
	s := NewState()
	st.Save(s)
	return s.Fingerprint()
}
