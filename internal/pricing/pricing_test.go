package pricing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceCost(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		guests int
		want   int64
	}{
		{"catering scales with guests", "catering", 10, 3000},
		{"catering with zero guests", "catering", 0, 0},
		{"decoration is flat", "decoration", 250, 5000},
		{"sound is flat", "sound", 1, 4000},
		{"photography is flat", "photography", 0, 7000},
		{"permit is flat", "permit", 99, 2000},
		{"unknown key costs nothing", "fireworks", 50, 0},
		{"empty key costs nothing", "", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ServiceCost(tt.key, tt.guests))
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int64
		guests    int
		services  []string
		want      int64
	}{
		{"no guests no services", 1000, 0, nil, 0},
		{"guests only", 800, 5, nil, 4000},
		{"decoration and photography", 1000, 3, []string{"decoration", "photography"}, 15000},
		{"all services", 400, 10, []string{"catering", "decoration", "sound", "photography", "permit"}, 4000 + 3000 + 5000 + 4000 + 7000 + 2000},
		{"unknown keys contribute zero", 700, 2, []string{"decoration", "helicopter"}, 1400 + 5000},
		{"services with zero guests", 1000, 0, []string{"catering", "sound"}, 4000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.basePrice, tt.guests, tt.services))
		})
	}
}

func TestOptionsCoverCostTable(t *testing.T) {
	opts := Options()
	assert.Len(t, opts, 5)
	for _, o := range opts {
		if o.Key == "catering" {
			continue
		}
		assert.NotZero(t, ServiceCost(o.Key, 0), "option %q should have a flat cost", o.Key)
	}
}

var requestNumberRe = regexp.MustCompile(`^REQ-\d{14}-[0-9A-F]{6}$`)

func TestNewRequestNumberFormat(t *testing.T) {
	now := time.Date(2025, 11, 1, 9, 30, 45, 0, time.UTC)
	n := NewRequestNumber(now)
	assert.Regexp(t, requestNumberRe, n)
	assert.Contains(t, n, "REQ-20251101093045-")
}

func TestNewRequestNumberUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2025, 11, 1, 14, 30, 45, 0, loc)
	n := NewRequestNumber(local)
	assert.Contains(t, n, "REQ-20251101093045-")
}

func TestNewRequestNumberVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[NewRequestNumber(now)] = true
	}
	// 24 random bits; 100 draws colliding would indicate a broken suffix.
	assert.Greater(t, len(seen), 90)
}
