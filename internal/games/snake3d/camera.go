package snake3d

import "github.com/vovakirdan/snake3d/internal/core"

// DefaultCameraOffset places the camera above and behind the head.
var DefaultCameraOffset = core.V(0, 10, 10)

// CameraPose is where the camera is and what it looks at, in world space.
type CameraPose struct {
	Position core.Vec3
	LookAt   core.Vec3
}

// CameraFor derives the camera pose from the head cell. It holds no state
// and is recomputed every frame.
func CameraFor(grid Grid, head, offset core.Vec3) CameraPose {
	target := grid.World(head)
	return CameraPose{
		Position: target.Add(offset),
		LookAt:   target,
	}
}
