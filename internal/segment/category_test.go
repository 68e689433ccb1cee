package segment

import (
	"strings"
	"testing"

	"github.com/danielokoye/ehr-segmenter/constants"
)

func TestClassifyHeader(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		header string
		want   constants.Category
	}{
		{"laboratory", "LABORATORY REPORT", constants.Laboratory},
		{"progress note", "PROGRESS NOTE", constants.ProgressNote},
		{"discharge", "DISCHARGE SUMMARY", constants.DischargeSummary},
		{"operative", "OPERATIVE REPORT", constants.Operative},
		{"radiology", "X-RAY FINDINGS", constants.Radiology},
		{"pharmacy", "PHARMACY", constants.Pharmacy},
		// "ORDERS" contains "ER", and emergency sits above pharmacy in the
		// table, so the emergency code wins here.
		{"er substring matches first", "PHARMACY ORDERS", constants.Emergency},
		// Both LABORATORY and NOTE appear; the table checks laboratory first.
		{"table order wins", "LABORATORY NOTE", constants.Laboratory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.header, "", cfg, nil); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.header, got, tt.want)
			}
		})
	}
}

func TestClassifyBodyText(t *testing.T) {
	cfg := DefaultConfig()

	if got := Classify("", "RADIOLOGY findings on axial views", cfg, nil); got != constants.Radiology {
		t.Errorf("body keyword: got %d, want %d", got, constants.Radiology)
	}

	// Keyword outside the head window is invisible to the table pass but the
	// fallback window is longer.
	text := strings.Repeat("x", 600) + " DISCHARGE instructions follow"
	if got := Classify("", text, cfg, nil); got != constants.DischargeSummary {
		t.Errorf("fallback window: got %d, want %d", got, constants.DischargeSummary)
	}
}

func TestClassifyEmergencyDeprioritized(t *testing.T) {
	cfg := DefaultConfig()

	// A note written in an ED setting stays a progress note.
	pad := strings.Repeat("9 ", 300)
	text := pad + "EMERGENCY visit NOTE follows"
	if got := Classify("", text, cfg, nil); got != constants.ProgressNote {
		t.Errorf("got %d, want %d", got, constants.ProgressNote)
	}
}

func TestClassifyDefault(t *testing.T) {
	cfg := DefaultConfig()
	if got := Classify("", "zzz qqq www", cfg, nil); got != constants.ProgressNote {
		t.Errorf("default: got %d, want %d", got, constants.ProgressNote)
	}
}
