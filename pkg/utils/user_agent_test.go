package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name        string
		ua          string
		lang        string
		wantDevice  string
		wantBrowser string
		wantLocale  string
	}{
		{
			name:        "Desktop Chrome",
			ua:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			lang:        "en-US,en;q=0.9",
			wantDevice:  "Computer",
			wantBrowser: "Chrome 120.0",
			wantLocale:  "en-US",
		},
		{
			name:        "iPhone Safari",
			ua:          "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			lang:        "es",
			wantDevice:  "Phone",
			wantBrowser: "Safari 17.0",
			wantLocale:  "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseUserAgent(tt.ua, tt.lang)
			assert.NotNil(t, info)
			assert.Equal(t, tt.wantDevice, info.Device)
			assert.Equal(t, tt.wantBrowser, info.Browser)
			assert.Equal(t, tt.wantLocale, info.Locale)
		})
	}
}

func TestParseUserAgent_Empty(t *testing.T) {
	info := ParseUserAgent("", "")
	assert.NotNil(t, info)
	assert.Equal(t, "Unknown", info.Device)
	assert.Equal(t, "Unknown", info.Browser)
	assert.Empty(t, info.Locale)
}
