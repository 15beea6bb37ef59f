package platform

import (
	"testing"
)

func TestDetectorIsMacOS(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"macos desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36", true},
		{"windows", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36", false},
		{"android", "Mozilla/5.0 (Linux; Android 12; Pixel 6) AppleWebKit/537.36", false},
		{"linux", "Mozilla/5.0 (X11; Linux x86_64)", false},
		{"empty", "", false},
		{"bare substring", "Mac", true},
		{"substring mid-string", "some MacBook thing", true},
		{"lowercase mac", "macintosh", false},
		// iPhone agents carry "like Mac OS X"; the substring test
		// classifies them as macOS. Pinned, not accidental.
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 15_4 like Mac OS X) AppleWebKit/605.1.15", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ua := tt.ua
			d := NewDetector(func() string { return ua })
			if got := d.IsMacOS(); got != tt.want {
				t.Errorf("IsMacOS() = %v, want %v for %q", got, tt.want, tt.ua)
			}
		})
	}
}

func TestDetectorNilProvider(t *testing.T) {
	d := NewDetector(nil)
	if d.IsMacOS() {
		t.Error("IsMacOS() with nil provider = true, want false")
	}
	if got := d.UserAgent(); got != "" {
		t.Errorf("UserAgent() with nil provider = %q, want empty", got)
	}
}

func TestDetectorReEvaluatesProvider(t *testing.T) {
	ua := "Windows NT 10.0"
	d := NewDetector(func() string { return ua })

	if d.IsMacOS() {
		t.Fatal("IsMacOS() = true before switching agents, want false")
	}

	ua = "Macintosh; Intel Mac OS X"
	if !d.IsMacOS() {
		t.Error("IsMacOS() = false after switching agents, want true — result must not be cached")
	}
}

func TestDefaultDetectorTracksAmbientAgent(t *testing.T) {
	orig := UserAgent()
	defer SetUserAgent(orig)

	SetUserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")
	if !IsMacOS() {
		t.Error("IsMacOS() = false with macOS ambient agent, want true")
	}

	SetUserAgent("Mozilla/5.0 (Windows NT 10.0)")
	if IsMacOS() {
		t.Error("IsMacOS() = true with Windows ambient agent, want false")
	}

	SetUserAgent("")
	if IsMacOS() {
		t.Error("IsMacOS() = true with empty ambient agent, want false")
	}
}
