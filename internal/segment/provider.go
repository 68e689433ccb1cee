package segment

import (
	"regexp"
	"strings"
)

var providerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Facility|Provider|Doctor|Dr\.|Physician):\s*(.+)`),
	regexp.MustCompile(`(?i)(?:Hospital|Clinic|Medical Center):\s*(.+)`),
}

// ExtractProviderFacility scans the leading lines of a page for labeled
// provider and facility values and composes them as "provider - facility".
// A labeled value counts as the facility when its line mentions a facility,
// hospital, or clinic; otherwise it is the provider. Later matches overwrite
// earlier ones, and missing roles fall back to the configured placeholders,
// so the result is always non-empty.
func ExtractProviderFacility(text string, cfg Config) string {
	lines := strings.Split(text, "\n")
	if len(lines) > cfg.ProviderScanLines {
		lines = lines[:cfg.ProviderScanLines]
	}

	provider := ""
	facility := ""
	for _, line := range lines {
		for _, pattern := range providerPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[1])
			lower := strings.ToLower(line)
			if strings.Contains(lower, "facility") || strings.Contains(lower, "hospital") || strings.Contains(lower, "clinic") {
				facility = value
			} else {
				provider = value
			}
		}
	}

	if provider == "" {
		provider = cfg.DefaultProvider
	}
	if facility == "" {
		facility = cfg.DefaultFacility
	}
	return provider + " - " + facility
}
