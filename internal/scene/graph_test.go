package scene

import (
	"math"
	"testing"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
)

var _ snake3d.Scene = (*Graph)(nil)

func TestGraphObjects(t *testing.T) {
	g := NewGraph(snake3d.DefaultConfig().Grid)

	a := g.CreateObject(snake3d.KindHead, core.V(0, 0.5, 0))
	b := g.CreateObject(snake3d.KindFood, core.V(3, 0.5, 3))
	c := g.CreateObject(snake3d.KindHead, core.V(1, 0.5, 0))

	if a == b || b == c || a == c {
		t.Fatalf("handles not unique: %d %d %d", a, b, c)
	}

	g.RemoveObject(b)
	g.RemoveObject(b) // second removal is a no-op

	objs := g.Objects()
	if len(objs) != 2 || g.Len() != 2 {
		t.Fatalf("Objects() = %v, expected 2 objects", objs)
	}
	if objs[0].Handle != a || objs[1].Handle != c {
		t.Errorf("Objects() not ordered by handle: %v", objs)
	}
	if objs[1].Pos != core.V(1, 0.5, 0) {
		t.Errorf("object %d at %v, expected (1, 0.5, 0)", c, objs[1].Pos)
	}
}

func TestGraphGameOver(t *testing.T) {
	g := NewGraph(snake3d.DefaultConfig().Grid)

	var hooked []snake3d.Cause
	g.OnGameOver = func(c snake3d.Cause) { hooked = append(hooked, c) }

	g.PresentGameOver(snake3d.CauseWall)
	g.PresentGameOver(snake3d.CauseSelf)

	if g.GameOvers() != 2 {
		t.Errorf("GameOvers() = %d, expected 2", g.GameOvers())
	}
	if g.LastCause() != snake3d.CauseSelf {
		t.Errorf("LastCause() = %v, expected self-collision", g.LastCause())
	}
	if len(hooked) != 2 || hooked[0] != snake3d.CauseWall {
		t.Errorf("OnGameOver calls = %v", hooked)
	}
}

func TestGraphDrivenByLoop(t *testing.T) {
	cfg := snake3d.DefaultConfig()
	g := NewGraph(cfg.Grid)
	l := snake3d.NewLoop(cfg, g, 42)

	if g.Len() != 2 {
		t.Errorf("Len() = %d, expected head and food", g.Len())
	}
	if g.Camera() != l.Camera() {
		t.Errorf("Camera() = %+v, expected %+v", g.Camera(), l.Camera())
	}
}

func defaultPose() snake3d.CameraPose {
	grid := snake3d.DefaultConfig().Grid
	return snake3d.CameraFor(grid, snake3d.Origin, snake3d.DefaultCameraOffset)
}

func TestViewProjectsLookAtToCenter(t *testing.T) {
	pose := defaultPose()
	v := NewView(pose, 80, 24, DefaultFOV)

	x, y, depth, ok := v.Project(pose.LookAt)
	if !ok {
		t.Fatal("look-at point should be in front of the camera")
	}
	if math.Abs(x-40) > 1e-9 || math.Abs(y-12) > 1e-9 {
		t.Errorf("Project(lookAt) = (%v, %v), expected screen center", x, y)
	}
	if expected := pose.LookAt.DistanceTo(pose.Position); math.Abs(depth-expected) > 1e-9 {
		t.Errorf("depth = %v, expected %v", depth, expected)
	}
}

func TestViewOrientation(t *testing.T) {
	pose := defaultPose()
	v := NewView(pose, 80, 24, DefaultFOV)

	cx, cy, _, _ := v.Project(pose.LookAt)

	rx, _, _, _ := v.Project(pose.LookAt.Add(core.V(1, 0, 0)))
	if rx <= cx {
		t.Errorf("+X projected to x=%v, expected right of %v", rx, cx)
	}

	_, fy, _, _ := v.Project(pose.LookAt.Add(core.V(0, 0, -3)))
	if fy >= cy {
		t.Errorf("-Z projected to y=%v, expected above %v", fy, cy)
	}

	_, _, _, ok := v.Project(pose.Position.Add(core.V(0, 5, 5)))
	if ok {
		t.Error("point behind the camera should not project")
	}
}

func TestViewCellAspect(t *testing.T) {
	pose := defaultPose()
	v := NewView(pose, 80, 24, DefaultFOV)

	cx, _, _, _ := v.Project(pose.LookAt)
	rx, _, _, _ := v.Project(pose.LookAt.Add(core.V(1, 0, 0)))

	// One world unit sideways at the look-at depth is focal/depth rows
	// tall and twice that many columns wide.
	depth := pose.LookAt.DistanceTo(pose.Position)
	focal := 12 / math.Tan(DefaultFOV*math.Pi/360)
	if expected := 2 * focal / depth; math.Abs((rx-cx)-expected) > 1e-9 {
		t.Errorf("column offset = %v, expected %v", rx-cx, expected)
	}
}

func TestViewStraightDown(t *testing.T) {
	pose := snake3d.CameraPose{Position: core.V(0, 10, 0), LookAt: core.V(0, 0, 0)}
	v := NewView(pose, 40, 20, 60)

	x, y, _, ok := v.Project(core.V(0, 0, 0))
	if !ok || math.Abs(x-20) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("Project(origin) = (%v, %v, %v), expected center", x, y, ok)
	}
}

func TestDrawFoodAtCenter(t *testing.T) {
	g := NewGraph(snake3d.DefaultConfig().Grid)
	pose := defaultPose()
	g.SetCameraPose(pose.Position, pose.LookAt)
	g.CreateObject(snake3d.KindFood, pose.LookAt)

	screen := core.NewScreen(80, 24)
	g.Draw(screen, DefaultFOV)

	cell := screen.GetCell(40, 12)
	if cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("center cell = %q/%v, expected red cube", cell.Rune, cell.Color)
	}
}

func TestDrawPaintsNearestLast(t *testing.T) {
	g := NewGraph(snake3d.DefaultConfig().Grid)
	pose := defaultPose()
	g.SetCameraPose(pose.Position, pose.LookAt)

	// The nearer cube sits on the same view ray and is created first.
	near := pose.Position.Add(pose.LookAt.Sub(pose.Position).Scale(0.5))
	g.CreateObject(snake3d.KindHead, near)
	g.CreateObject(snake3d.KindFood, pose.LookAt)

	screen := core.NewScreen(80, 24)
	g.Draw(screen, DefaultFOV)

	if cell := screen.GetCell(40, 12); cell.Color != core.ColorGreen {
		t.Errorf("center cell color = %v, expected the nearer green cube", cell.Color)
	}
}

func TestDrawFloorOutline(t *testing.T) {
	g := NewGraph(snake3d.Grid{Size: 4, CubeSize: 1})
	pose := snake3d.CameraPose{Position: core.V(0, 20, 0.001), LookAt: core.V(0, 0, 0)}
	g.SetCameraPose(pose.Position, pose.LookAt)

	screen := core.NewScreen(80, 40)
	g.Draw(screen, 60)

	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if screen.Get(x, y) == '#' {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected the floor outline to be drawn")
	}
	if screen.Get(0, 0) != ' ' {
		t.Errorf("corner cell = %q, expected untouched", screen.Get(0, 0))
	}
}

func TestDrawWithoutCamera(t *testing.T) {
	g := NewGraph(snake3d.DefaultConfig().Grid)
	g.CreateObject(snake3d.KindHead, core.V(0, 0.5, 0))

	screen := core.NewScreen(20, 10)
	g.Draw(screen, DefaultFOV) // must not panic

	if s := screen.String(); s != core.NewScreen(20, 10).String() {
		t.Errorf("expected a blank screen without a camera pose, got:\n%s", s)
	}
}
