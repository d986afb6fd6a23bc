package scene

import (
	"math"
	"sort"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
)

const (
	// DefaultFOV is the vertical field of view in degrees.
	DefaultFOV = 75.0

	nearPlane = 0.1

	// Floor lines are clipped further out so their projected endpoints
	// stay within a few screens of the viewport.
	lineNear = 1.0

	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0
)

var worldUp = core.V(0, 1, 0)

// View projects world-space points for one camera pose and screen size.
type View struct {
	eye     core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3
	focal   float64
	cx, cy  float64
}

// NewView builds the look-at basis for pose on a width x height cell grid.
func NewView(pose snake3d.CameraPose, width, height int, fovDeg float64) View {
	if fovDeg <= 0 || fovDeg >= 180 {
		fovDeg = DefaultFOV
	}

	forward := pose.LookAt.Sub(pose.Position).Norm()
	right := forward.Cross(worldUp).Norm()
	if right.IsZero() {
		// Looking straight down or up: take screen-up along -Z.
		right = forward.Cross(core.V(0, 0, -1)).Norm()
	}
	up := right.Cross(forward)

	halfH := float64(height) / 2
	return View{
		eye:     pose.Position,
		right:   right,
		up:      up,
		forward: forward,
		focal:   halfH / math.Tan(fovDeg*math.Pi/360),
		cx:      float64(width) / 2,
		cy:      halfH,
	}
}

// ToCamera converts a world point to camera space: X right, Y up, Z depth.
func (v View) ToCamera(p core.Vec3) core.Vec3 {
	d := p.Sub(v.eye)
	return core.V(d.Dot(v.right), d.Dot(v.up), d.Dot(v.forward))
}

// ScreenOf maps a camera-space point in front of the near plane to
// fractional cell coordinates.
func (v View) ScreenOf(c core.Vec3) (x, y float64) {
	inv := v.focal / c.Z
	return v.cx + c.X*inv*cellAspect, v.cy - c.Y*inv
}

// Project maps a world point to cell coordinates. ok is false when the
// point is behind the near plane.
func (v View) Project(p core.Vec3) (x, y, depth float64, ok bool) {
	c := v.ToCamera(p)
	if c.Z < nearPlane {
		return 0, 0, c.Z, false
	}
	x, y = v.ScreenOf(c)
	return x, y, c.Z, true
}

type drawItem struct {
	obj   Object
	depth float64
}

// Draw renders the floor grid and every object into dst from the current
// camera pose. Cubes are painted far to near so closer ones win.
func (g *Graph) Draw(dst *core.Screen, fovDeg float64) {
	view := NewView(g.camera, dst.Width(), dst.Height(), fovDeg)

	g.drawFloor(dst, view)

	items := make([]drawItem, 0, len(g.objects))
	for _, o := range g.Objects() {
		items = append(items, drawItem{obj: o, depth: view.ToCamera(o.Pos).Z})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })

	for _, it := range items {
		drawCube(dst, view, it.obj, g.Floor.CubeSize)
	}
}

func (g *Graph) drawFloor(dst *core.Screen, view View) {
	if g.Floor.Size <= 0 {
		return
	}
	extent := float64(g.Floor.Size) / 2 * g.Floor.CubeSize
	for i := 0; i <= g.Floor.Size; i++ {
		k := -extent + float64(i)*g.Floor.CubeSize
		r, c := '.', core.ColorDarkGray
		if i == 0 || i == g.Floor.Size {
			r, c = '#', core.ColorGray
		}
		drawSegment(dst, view, core.V(k, 0, -extent), core.V(k, 0, extent), r, c)
		drawSegment(dst, view, core.V(-extent, 0, k), core.V(extent, 0, k), r, c)
	}
}

// drawSegment draws a world-space line, clipped against the near plane.
func drawSegment(dst *core.Screen, view View, a, b core.Vec3, r rune, c core.Color) {
	ca, cb := view.ToCamera(a), view.ToCamera(b)
	if ca.Z < lineNear && cb.Z < lineNear {
		return
	}
	if ca.Z < lineNear {
		ca = clipNear(ca, cb, lineNear)
	} else if cb.Z < lineNear {
		cb = clipNear(cb, ca, lineNear)
	}

	x0, y0 := view.ScreenOf(ca)
	x1, y1 := view.ScreenOf(cb)
	if offscreen(x0, y0, x1, y1, dst) {
		return
	}
	dst.DrawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), r, c)
}

// clipNear moves behind toward front until it sits on the plane z = near.
func clipNear(behind, front core.Vec3, near float64) core.Vec3 {
	t := (near - behind.Z) / (front.Z - behind.Z)
	return behind.Add(front.Sub(behind).Scale(t))
}

// offscreen reports whether both endpoints lie past the same screen edge.
func offscreen(x0, y0, x1, y1 float64, dst *core.Screen) bool {
	w, h := float64(dst.Width()), float64(dst.Height())
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= w && x1 >= w) || (y0 >= h && y1 >= h)
}

// drawCube fills the screen bounding box of the cube's eight corners.
func drawCube(dst *core.Screen, view View, o Object, size float64) {
	h := size / 2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, dx := range []float64{-h, h} {
		for _, dy := range []float64{-h, h} {
			for _, dz := range []float64{-h, h} {
				x, y, _, ok := view.Project(o.Pos.Add(core.V(dx, dy, dz)))
				if !ok {
					return
				}
				minX, maxX = math.Min(minX, x), math.Max(maxX, x)
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			}
		}
	}

	x0, x1 := int(math.Floor(minX)), int(math.Floor(maxX))
	y0, y1 := int(math.Floor(minY)), int(math.Floor(maxY))
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, dst.Width()-1)
	y1 = min(y1, dst.Height()-1)
	if x1 < x0 || y1 < y0 {
		return
	}

	r, c := objectGlyph(o.Kind)
	dst.FillRect(x0, y0, x1-x0+1, y1-y0+1, r, c)
}

func objectGlyph(kind snake3d.ObjectKind) (rune, core.Color) {
	switch kind {
	case snake3d.KindFood:
		return '█', core.ColorRed
	default:
		return '█', core.ColorGreen
	}
}
