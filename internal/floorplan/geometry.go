package floorplan

// ReferenceWidth is the nominal width, in authored units, of the canvas the
// venue editor lays tables out on. Scaling is uniform off the container's
// smaller dimension so rotated plans keep their aspect.
const ReferenceWidth = 800.0

// Size is a width/height pair in whatever units the caller renders in.
type Size struct {
	W float64
	H float64
}

// Default minimum footprints keep small venues tappable on phone-sized
// containers. Terminal callers pass their own cell-grid minima instead.
var (
	DefaultTableMin   = Size{W: 50, H: 40}
	DefaultElementMin = Size{W: 20, H: 20}
)

// Rect is an absolute placement inside a container.
type Rect struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Rotation float64 // degrees, carried through untouched
}

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MapRect converts a percentage position plus reference size into an
// absolute placement within a container. The percentage names the item's
// center, not its corner. Returns ok=false until the container has been
// measured (both dimensions > 0); callers defer rendering for that frame.
// Out-of-range percentages are not rejected, they just land off-canvas.
func MapRect(containerW, containerH float64, posXPct, posYPct, refW, refH, rotation float64, min Size) (Rect, bool) {
	if containerW <= 0 || containerH <= 0 {
		return Rect{}, false
	}

	scale := containerW / ReferenceWidth
	if containerH < containerW {
		scale = containerH / ReferenceWidth
	}

	w := refW * scale
	if w < min.W {
		w = min.W
	}
	h := refH * scale
	if h < min.H {
		h = min.H
	}

	cx := posXPct / 100 * containerW
	cy := posYPct / 100 * containerH

	return Rect{
		X:        cx - w/2,
		Y:        cy - h/2,
		W:        w,
		H:        h,
		Rotation: rotation,
	}, true
}
