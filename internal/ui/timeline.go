package ui

import (
	"fmt"
	"image"

	"confetti/pkg/core"
)

const (
	timelineHeight = 6
	timelineMargin = 10
)

// TimelineRect is the scrubber bar along the bottom of a viewW*viewH view.
func TimelineRect(viewW, viewH int) image.Rectangle {
	y := viewH - timelineMargin - timelineHeight
	return image.Rect(timelineMargin, y, viewW-timelineMargin, y+timelineHeight)
}

// TimelineTarget maps a cursor x inside rect onto a seek target in seconds.
func TimelineTarget(x int, rect image.Rectangle, duration float64) float64 {
	if rect.Dx() <= 0 {
		return 0
	}
	frac := core.Clamp(float64(x-rect.Min.X)/float64(rect.Dx()), 0, 1)
	return frac * duration
}

// TransportLabel summarises the playhead, e.g. "paused 1.25s / 4.00s".
func TransportLabel(state string, current, duration float64, alive int) string {
	return fmt.Sprintf("%s %.2fs / %.2fs  %d alive", state, current, duration, alive)
}
