package web

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/socialroute/internal/motion"
)

func TestCapabilitiesFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    motion.Capabilities
	}{
		{
			name: "no hints",
			want: motion.Capabilities{},
		},
		{
			name:    "reduced motion",
			headers: map[string]string{hintReducedMotion: "reduce"},
			want:    motion.Capabilities{ReducedMotion: true},
		},
		{
			name:    "reduced motion is case insensitive",
			headers: map[string]string{hintReducedMotion: " Reduce "},
			want:    motion.Capabilities{ReducedMotion: true},
		},
		{
			name:    "no preference",
			headers: map[string]string{hintReducedMotion: "no-preference"},
			want:    motion.Capabilities{},
		},
		{
			name:    "mobile narrow",
			headers: map[string]string{hintMobile: "?1", hintViewportWidth: "390"},
			want:    motion.Capabilities{Touch: true, Narrow: true},
		},
		{
			name:    "desktop wide",
			headers: map[string]string{hintMobile: "?0", hintViewportWidth: "1440"},
			want:    motion.Capabilities{},
		},
		{
			name:    "breakpoint is not narrow",
			headers: map[string]string{hintViewportWidth: "768"},
			want:    motion.Capabilities{},
		},
		{
			name:    "garbage width ignored",
			headers: map[string]string{hintViewportWidth: "wide"},
			want:    motion.Capabilities{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, capabilitiesFromRequest(r))
		})
	}
}

func TestAdvertiseHints(t *testing.T) {
	rec := httptest.NewRecorder()
	advertiseHints(rec)

	assert.Equal(t, "Sec-CH-Prefers-Reduced-Motion, Sec-CH-UA-Mobile, Sec-CH-Viewport-Width", rec.Header().Get("Accept-CH"))
	assert.Equal(t, hintReducedMotion, rec.Header().Get("Critical-CH"))
	assert.Contains(t, rec.Header().Values("Vary"), acceptCH)
}
