package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ericfisherdev/socialroute/internal/motion"
)

// Client hints the pages read. Browsers send them on requests after the
// first once the server lists them in Accept-CH.
const (
	hintReducedMotion = "Sec-CH-Prefers-Reduced-Motion"
	hintMobile        = "Sec-CH-UA-Mobile"
	hintViewportWidth = "Sec-CH-Viewport-Width"

	narrowViewportPx = 768
)

var acceptCH = strings.Join([]string{hintReducedMotion, hintMobile, hintViewportWidth}, ", ")

// capabilitiesFromRequest derives the motion capabilities of the requesting
// browser. Missing or unparsable hints leave the corresponding field false.
func capabilitiesFromRequest(r *http.Request) motion.Capabilities {
	caps := motion.Capabilities{
		ReducedMotion: strings.EqualFold(strings.TrimSpace(r.Header.Get(hintReducedMotion)), "reduce"),
		Touch:         strings.TrimSpace(r.Header.Get(hintMobile)) == "?1",
	}

	if raw := strings.TrimSpace(r.Header.Get(hintViewportWidth)); raw != "" {
		if w, err := strconv.Atoi(raw); err == nil && w > 0 {
			caps.Narrow = w < narrowViewportPx
		}
	}
	return caps
}

// advertiseHints asks the browser for the hints and marks the response as
// varying on them.
func advertiseHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", acceptCH)
	w.Header().Set("Critical-CH", hintReducedMotion)
	w.Header().Add("Vary", acceptCH)
}
