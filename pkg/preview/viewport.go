package preview

import "strings"

// Viewport selects how the preview frame is sized.
type Viewport string

const (
	Desktop Viewport = "desktop"
	Tablet  Viewport = "tablet"
	Mobile  Viewport = "mobile"
)

// Viewports lists the selectable viewports in toolbar order.
var Viewports = []Viewport{Desktop, Tablet, Mobile}

// Frame is the fixed presentation transform for a viewport.
type Frame struct {
	Width     string
	MaxHeight string
	Scale     float64
}

// ParseViewport maps a query value to a Viewport, defaulting to Desktop.
func ParseViewport(raw string) Viewport {
	switch v := Viewport(strings.ToLower(strings.TrimSpace(raw))); v {
	case Tablet, Mobile:
		return v
	default:
		return Desktop
	}
}

// Label is the toolbar caption.
func (v Viewport) Label() string {
	switch v {
	case Tablet:
		return "Tablet"
	case Mobile:
		return "Mobile"
	default:
		return "Desktop"
	}
}

// Frame returns the width and scale applied to the document.
func (v Viewport) Frame() Frame {
	switch v {
	case Tablet:
		return Frame{Width: "768px", MaxHeight: "800px", Scale: 0.8}
	case Mobile:
		return Frame{Width: "375px", MaxHeight: "800px", Scale: 0.8}
	default:
		return Frame{Width: "100%", MaxHeight: "none", Scale: 1}
	}
}

// Pane is one of the mutually exclusive preview tabs.
type Pane string

const (
	PanePreview Pane = "preview"
	PaneCode    Pane = "code"
)

// ParsePane maps a query value to a Pane, defaulting to PanePreview.
func ParsePane(raw string) Pane {
	if Pane(strings.ToLower(strings.TrimSpace(raw))) == PaneCode {
		return PaneCode
	}
	return PanePreview
}
