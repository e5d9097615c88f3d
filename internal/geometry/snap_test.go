package geometry

import "testing"

var snapViewport = Viewport{Width: 1920, Height: 1080, ChromeHeight: 80}

func TestFindSnapZone(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want SnapZone
	}{
		{
			name: "at left edge",
			rect: Rect{0, 300, 400, 300},
			want: ZoneLeft,
		},
		{
			name: "within threshold of left edge",
			rect: Rect{15, 300, 400, 300},
			want: ZoneLeft,
		},
		{
			name: "left overshoot still snaps left",
			rect: Rect{-50, 300, 400, 300},
			want: ZoneLeft,
		},
		{
			name: "right edge near right viewport edge",
			rect: Rect{1510, 300, 400, 300},
			want: ZoneRight,
		},
		{
			name: "top edge near top",
			rect: Rect{700, 10, 400, 300},
			want: ZoneTop,
		},
		{
			name: "bottom edge near usable bottom",
			rect: Rect{700, 690, 400, 300},
			want: ZoneBottom,
		},
		{
			name: "right window edge at horizontal midline snaps right",
			rect: Rect{560, 300, 400, 300},
			want: ZoneRight,
		},
		{
			name: "left window edge at horizontal midline snaps left",
			rect: Rect{965, 300, 400, 300},
			want: ZoneLeft,
		},
		{
			name: "center of screen no zone",
			rect: Rect{760, 350, 400, 300},
			want: ZoneNone,
		},
		{
			name: "just outside threshold no zone",
			rect: Rect{21, 300, 400, 300},
			want: ZoneNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSnapZone(tt.rect, snapViewport, DefaultSnapThreshold)
			if got != tt.want {
				t.Errorf("FindSnapZone(%v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestSnapZoneBounds(t *testing.T) {
	tests := []struct {
		zone SnapZone
		want Rect
	}{
		{ZoneLeft, Rect{0, 0, 960, 1000}},
		{ZoneRight, Rect{960, 0, 960, 1000}},
		{ZoneTop, Rect{0, 0, 1920, 500}},
		{ZoneBottom, Rect{0, 500, 1920, 500}},
		{ZoneTopLeft, Rect{0, 0, 960, 500}},
		{ZoneTopRight, Rect{960, 0, 960, 500}},
		{ZoneBottomLeft, Rect{0, 500, 960, 500}},
		{ZoneBottomRight, Rect{960, 500, 960, 500}},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			got, ok := SnapZoneBounds(tt.zone, snapViewport)
			if !ok {
				t.Fatalf("SnapZoneBounds(%v) not ok", tt.zone)
			}
			if got != tt.want {
				t.Errorf("SnapZoneBounds(%v) = %v, want %v", tt.zone, got, tt.want)
			}
		})
	}

	if _, ok := SnapZoneBounds(ZoneNone, snapViewport); ok {
		t.Error("ZoneNone should have no bounds")
	}
}

// A window already occupying a half zone detects that same zone, so
// releasing it in place keeps its geometry stable.
func TestSnapRoundTrip(t *testing.T) {
	bounds, ok := SnapZoneBounds(ZoneLeft, snapViewport)
	if !ok {
		t.Fatal("no bounds for left zone")
	}
	if bounds != (Rect{0, 0, 960, 1000}) {
		t.Fatalf("left zone = %v, want {0 0 960 1000}", bounds)
	}

	zone := FindSnapZone(bounds, snapViewport, DefaultSnapThreshold)
	if zone != ZoneLeft {
		t.Errorf("snapped window detects zone %v, want ZoneLeft", zone)
	}
	again, _ := SnapZoneBounds(zone, snapViewport)
	if again != bounds {
		t.Errorf("round trip changed bounds: %v -> %v", bounds, again)
	}
}

func TestSnapZonesPartitionUsableViewport(t *testing.T) {
	v := Viewport{Width: 1919, Height: 1081, ChromeHeight: 80} // odd sizes
	u := v.Usable()

	left, _ := SnapZoneBounds(ZoneLeft, v)
	right, _ := SnapZoneBounds(ZoneRight, v)
	if left.Width+right.Width != u.Width {
		t.Errorf("halves do not cover width: %d + %d != %d", left.Width, right.Width, u.Width)
	}
	if left.Intersects(right) {
		t.Error("left and right halves overlap")
	}

	top, _ := SnapZoneBounds(ZoneTop, v)
	bottom, _ := SnapZoneBounds(ZoneBottom, v)
	if top.Height+bottom.Height != u.Height {
		t.Errorf("halves do not cover height: %d + %d != %d", top.Height, bottom.Height, u.Height)
	}
}

func TestCornerZoneDetection(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want SnapZone
	}{
		// Edges are clear of the 20px threshold; centers sit within twice
		// the threshold of a corner point.
		{"top-left", Rect{30, 30, 10, 10}, ZoneTopLeft},
		{"top-right", Rect{1880, 30, 10, 10}, ZoneTopRight},
		{"bottom-left", Rect{30, 960, 10, 10}, ZoneBottomLeft},
		{"bottom-right", Rect{1880, 960, 10, 10}, ZoneBottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSnapZone(tt.rect, snapViewport, 20)
			if got != tt.want {
				t.Errorf("FindSnapZone(%v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestParseSnapZone(t *testing.T) {
	for z := ZoneLeft; z <= ZoneBottomRight; z++ {
		if got := ParseSnapZone(z.String()); got != z {
			t.Errorf("ParseSnapZone(%q) = %v, want %v", z.String(), got, z)
		}
	}
	if got := ParseSnapZone("diagonal"); got != ZoneNone {
		t.Errorf("ParseSnapZone(unknown) = %v, want ZoneNone", got)
	}
}
