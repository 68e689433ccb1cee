package segment

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tuned heuristic constants for segmentation. The numeric
// values are empirically calibrated against reviewed document bundles; keep
// them here rather than inline so they can be recalibrated without touching
// algorithm code.
type Config struct {
	// HeaderScanLines is how many leading lines are searched for a header.
	HeaderScanLines int `yaml:"header_scan_lines"`
	// HeaderFuzzyCutoff is the partial-ratio score (0-100) a line must
	// exceed against a header keyword to count as a fuzzy header match.
	HeaderFuzzyCutoff int `yaml:"header_fuzzy_cutoff"`
	// ProviderScanLines is how many leading lines are searched for
	// provider/facility labels.
	ProviderScanLines int `yaml:"provider_scan_lines"`
	// CategoryHeadChars bounds the text prefix used for keyword-table
	// classification when the header itself does not match.
	CategoryHeadChars int `yaml:"category_head_chars"`
	// CategoryBodyChars bounds the text prefix used by the fallback
	// category heuristics.
	CategoryBodyChars int `yaml:"category_body_chars"`
	// ContinuityWindow is the number of characters compared across a page
	// boundary for the content-continuity signal.
	ContinuityWindow int `yaml:"continuity_window"`
	// GroupThreshold is the similarity score required to keep a page in
	// the current group.
	GroupThreshold float64 `yaml:"group_threshold"`
	// ContinuationThreshold replaces GroupThreshold when the candidate
	// page carries a continuation marker.
	ContinuationThreshold float64 `yaml:"continuation_threshold"`
	// ReferenceKeySeed is the first reference key issued for a document.
	ReferenceKeySeed int `yaml:"reference_key_seed"`
	// DefaultProvider and DefaultFacility fill in when a page has no
	// recognizable provider or facility line.
	DefaultProvider string `yaml:"default_provider"`
	DefaultFacility string `yaml:"default_facility"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		HeaderScanLines:       15,
		HeaderFuzzyCutoff:     80,
		ProviderScanLines:     20,
		CategoryHeadChars:     500,
		CategoryBodyChars:     1000,
		ContinuityWindow:      200,
		GroupThreshold:        0.7,
		ContinuationThreshold: 0.6,
		ReferenceKeySeed:      120991,
		DefaultProvider:       "ABC DoctorName",
		DefaultFacility:       "ABC Facility Name",
	}
}

// DefaultProviderFacility is the composed placeholder used when a group has
// no provider consensus at all.
func (c Config) DefaultProviderFacility() string {
	return c.DefaultProvider + " - " + c.DefaultFacility
}

// LoadConfig reads a YAML override file on top of the defaults. Fields
// omitted from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
