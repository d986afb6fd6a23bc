// Package scene keeps the renderable state a snake3d.Loop drives and
// projects it onto a terminal cell buffer.
package scene

import (
	"sort"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
)

// Object is one cube in the scene.
type Object struct {
	Handle snake3d.Handle
	Kind   snake3d.ObjectKind
	Pos    core.Vec3 // World-space center
}

// Floor is the grid drawn under the cubes.
type Floor struct {
	Size     int     // Cells per edge
	CubeSize float64 // World units per cell
}

// Graph is an in-memory snake3d.Scene. It is not safe for concurrent use;
// hosts read it from the same goroutine that drives the loop.
type Graph struct {
	Floor Floor

	// OnGameOver, when set, is called from PresentGameOver.
	OnGameOver func(cause snake3d.Cause)

	objects   map[snake3d.Handle]Object
	next      snake3d.Handle
	camera    snake3d.CameraPose
	gameOvers int
	lastCause snake3d.Cause
}

// NewGraph creates an empty scene over a floor matching grid.
func NewGraph(grid snake3d.Grid) *Graph {
	return &Graph{
		Floor:   Floor{Size: grid.Size, CubeSize: grid.CubeSize},
		objects: make(map[snake3d.Handle]Object),
	}
}

// CreateObject implements snake3d.Scene.
func (g *Graph) CreateObject(kind snake3d.ObjectKind, pos core.Vec3) snake3d.Handle {
	g.next++
	g.objects[g.next] = Object{Handle: g.next, Kind: kind, Pos: pos}
	return g.next
}

// RemoveObject implements snake3d.Scene. Unknown handles are ignored.
func (g *Graph) RemoveObject(h snake3d.Handle) {
	delete(g.objects, h)
}

// SetCameraPose implements snake3d.Scene.
func (g *Graph) SetCameraPose(pos, lookAt core.Vec3) {
	g.camera = snake3d.CameraPose{Position: pos, LookAt: lookAt}
}

// PresentGameOver implements snake3d.Scene.
func (g *Graph) PresentGameOver(cause snake3d.Cause) {
	g.gameOvers++
	g.lastCause = cause
	if g.OnGameOver != nil {
		g.OnGameOver(cause)
	}
}

// Objects returns the live objects ordered by handle.
func (g *Graph) Objects() []Object {
	out := make([]Object, 0, len(g.objects))
	for _, o := range g.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// Len returns the number of live objects.
func (g *Graph) Len() int {
	return len(g.objects)
}

// Camera returns the last camera pose.
func (g *Graph) Camera() snake3d.CameraPose {
	return g.camera
}

// GameOvers returns how many times a game over was presented.
func (g *Graph) GameOvers() int {
	return g.gameOvers
}

// LastCause returns the cause of the most recent game over.
func (g *Graph) LastCause() snake3d.Cause {
	return g.lastCause
}
