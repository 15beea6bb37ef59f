// Package platform classifies the host operating system from its reported
// user-agent string.
//
// Classification is re-evaluated on every call rather than cached, so a host
// that swaps its ambient user agent mid-session (platform emulation in
// tests, embedded webviews) is reflected immediately.
package platform

import (
	"strings"
	"sync"
)

// Provider returns the ambient user-agent string describing the runtime.
// It is consulted on every classification; returning "" is valid and
// classifies as non-macOS.
type Provider func() string

// Detector classifies the platform from a user-agent provider.
type Detector struct {
	provider Provider
}

// NewDetector creates a detector backed by the given provider.
// A nil provider always classifies as non-macOS.
func NewDetector(p Provider) *Detector {
	return &Detector{provider: p}
}

// UserAgent returns the provider's current value.
func (d *Detector) UserAgent() string {
	if d == nil || d.provider == nil {
		return ""
	}
	return d.provider()
}

// IsMacOS returns true iff the current user agent contains the substring
// "Mac". This is a substring test, not a token match: iPhone agents carrying
// "like Mac OS X" classify as macOS too, which mirrors the historical
// behavior callers depend on.
func (d *Detector) IsMacOS() bool {
	return strings.Contains(d.UserAgent(), "Mac")
}

// ambient is the process-wide user agent read by the default detector.
var (
	ambientMu sync.RWMutex
	ambientUA string
)

// SetUserAgent replaces the ambient user agent seen by the default detector.
// Tests use this to simulate platforms.
func SetUserAgent(ua string) {
	ambientMu.Lock()
	ambientUA = ua
	ambientMu.Unlock()
}

// UserAgent returns the ambient user agent.
func UserAgent() string {
	ambientMu.RLock()
	defer ambientMu.RUnlock()
	return ambientUA
}

// Default is the detector backed by the ambient user agent.
var Default = NewDetector(UserAgent)

// IsMacOS reports the default detector's classification.
func IsMacOS() bool {
	return Default.IsMacOS()
}
