package status

import (
	"sync/atomic"
)

// MaxStringLen bounds stored labels; phase and reason names fit well inside
const MaxStringLen = 32

// AtomicString holds a short label, zero value is the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the label
func (s *AtomicString) Load() string {
	p := s.ptr.Load()
	if p == nil {
		return ""
	}
	return *p
}
