package window

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/notelist/internal/heights"
)

// DisplayMode controls how much of each note a row shows.
type DisplayMode int

const (
	// Condensed rows show the title only.
	Condensed DisplayMode = iota
	// Comfy rows show the title and preview, one terminal line per preview
	// line.
	Comfy
	// Expanded rows wrap the preview to the viewport width.
	Expanded
)

var displayModeNames = []string{"condensed", "comfy", "expanded"}

func (m DisplayMode) String() string {
	if m < 0 || int(m) >= len(displayModeNames) {
		return displayModeNames[Comfy]
	}
	return displayModeNames[m]
}

func (m DisplayMode) Next() DisplayMode {
	return (m + 1) % DisplayMode(len(displayModeNames))
}

// ShowsPreview reports whether rows render preview lines at all.
func (m DisplayMode) ShowsPreview() bool {
	return m != Condensed
}

// Estimate is the pre-layout row height for the mode.
func (m DisplayMode) Estimate() heights.Estimate {
	est := heights.DefaultEstimate
	if !m.ShowsPreview() {
		est.PreviewLines = 0
	}
	return est
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	for i, name := range displayModeNames {
		if strings.EqualFold(s, name) {
			return DisplayMode(i), nil
		}
	}
	return Comfy, fmt.Errorf("unknown display mode %q", s)
}
