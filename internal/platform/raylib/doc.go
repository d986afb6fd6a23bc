// Package raylib hosts the game in a native window with real 3D cubes.
//
// The backend needs cgo and the raylib system libraries, so it is only
// compiled with the raylib build tag:
//
//	go build -tags raylib ./cmd/snake3d
//
// Without the tag the package is empty and the "raylib" backend is not
// registered.
package raylib
