package geometry

// SnapZone names a target region a dragged window can be replaced with on
// release: four halves along the viewport edges and four corner quarters.
type SnapZone int

const (
	ZoneNone SnapZone = iota
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
	ZoneTopLeft
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight
)

// String returns the zone name used in logs and the MCP surface.
func (z SnapZone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneBottomLeft:
		return "bottom-left"
	case ZoneBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ParseSnapZone maps a zone name back to its SnapZone. Unknown names map to
// ZoneNone.
func ParseSnapZone(name string) SnapZone {
	for z := ZoneLeft; z <= ZoneBottomRight; z++ {
		if z.String() == name {
			return z
		}
	}
	return ZoneNone
}

// FindSnapZone tests a window rectangle against the snap targets in priority
// order: edge (half) zones first, corner quarters second. Edge detection
// keys on the matching window edge's side: a window edge near its same-side
// outer viewport edge, or near the usable midline, selects that side's half.
// Corners match when the window center lands within twice the threshold of
// a viewport corner point. Returns ZoneNone when nothing is in range.
func FindSnapZone(r Rect, v Viewport, threshold int) SnapZone {
	if threshold <= 0 {
		threshold = DefaultSnapThreshold
	}
	u := v.Usable()
	if u.Width <= 0 || u.Height <= 0 {
		return ZoneNone
	}

	midX := u.X + u.Width/2
	midY := u.Y + u.Height/2

	switch {
	case r.X <= u.X+threshold:
		return ZoneLeft
	case r.Right() >= u.Right()-threshold:
		return ZoneRight
	case r.Y <= u.Y+threshold:
		return ZoneTop
	case r.Bottom() >= u.Bottom()-threshold:
		return ZoneBottom
	case abs(r.X-midX) <= threshold:
		return ZoneLeft
	case abs(r.Right()-midX) <= threshold:
		return ZoneRight
	case abs(r.Y-midY) <= threshold:
		return ZoneTop
	case abs(r.Bottom()-midY) <= threshold:
		return ZoneBottom
	}

	cx, cy := r.Center()
	corner := 2 * threshold
	switch {
	case abs(cx-u.X) <= corner && abs(cy-u.Y) <= corner:
		return ZoneTopLeft
	case abs(cx-u.Right()) <= corner && abs(cy-u.Y) <= corner:
		return ZoneTopRight
	case abs(cx-u.X) <= corner && abs(cy-u.Bottom()) <= corner:
		return ZoneBottomLeft
	case abs(cx-u.Right()) <= corner && abs(cy-u.Bottom()) <= corner:
		return ZoneBottomRight
	}

	return ZoneNone
}

// SnapZoneBounds returns the target rectangle for a zone. Halves and
// quarters partition the usable viewport exactly: the right/bottom pieces
// absorb any odd pixel so there is no gap and no overlap. The second return
// is false for ZoneNone.
func SnapZoneBounds(z SnapZone, v Viewport) (Rect, bool) {
	u := v.Usable()
	halfW := u.Width / 2
	halfH := u.Height / 2

	switch z {
	case ZoneLeft:
		return Rect{u.X, u.Y, halfW, u.Height}, true
	case ZoneRight:
		return Rect{u.X + halfW, u.Y, u.Width - halfW, u.Height}, true
	case ZoneTop:
		return Rect{u.X, u.Y, u.Width, halfH}, true
	case ZoneBottom:
		return Rect{u.X, u.Y + halfH, u.Width, u.Height - halfH}, true
	case ZoneTopLeft:
		return Rect{u.X, u.Y, halfW, halfH}, true
	case ZoneTopRight:
		return Rect{u.X + halfW, u.Y, u.Width - halfW, halfH}, true
	case ZoneBottomLeft:
		return Rect{u.X, u.Y + halfH, halfW, u.Height - halfH}, true
	case ZoneBottomRight:
		return Rect{u.X + halfW, u.Y + halfH, u.Width - halfW, u.Height - halfH}, true
	default:
		return Rect{}, false
	}
}
