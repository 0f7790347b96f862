package main

import (
	"github.com/charmbracelet/harmonica"
	"github.com/wegiangb/occluder/pkg/math3d"
)

// axisSpring smooths one scalar coordinate toward a moving target using a
// harmonica spring, the same pattern the teacher uses to decay rotation
// velocity (RotationAxis in the original cmd/trophy): position is driven
// by Update, which returns the spring-eased value and its velocity.
type axisSpring struct {
	pos, vel float64
	spring   harmonica.Spring
}

func newAxisSpring(fps int, initial float64) axisSpring {
	return axisSpring{
		pos:    initial,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 2.0, 1.0),
	}
}

func (a *axisSpring) update(target float64) float64 {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, target)
	return a.pos
}

// flightPath smoothly carries the camera from waypoint to waypoint around
// a scene, so the demo can sweep a camera through a set of occluders and
// report live occlusion statistics every frame, rather than only a single
// static snapshot.
type flightPath struct {
	waypoints []math3d.Vec3
	index     int

	x, y, z axisSpring
}

func newFlightPath(fps int, waypoints []math3d.Vec3) *flightPath {
	start := waypoints[0]
	return &flightPath{
		waypoints: waypoints,
		x:         newAxisSpring(fps, start.X),
		y:         newAxisSpring(fps, start.Y),
		z:         newAxisSpring(fps, start.Z),
	}
}

// step advances the spring toward the current waypoint and returns the
// eased camera position. Once within arriveRadius of the target, it
// advances to the next waypoint (looping back to the first).
func (f *flightPath) step(arriveRadius float64) math3d.Vec3 {
	target := f.waypoints[f.index]
	pos := math3d.V3(f.x.update(target.X), f.y.update(target.Y), f.z.update(target.Z))

	if pos.Distance(target) < arriveRadius {
		f.index = (f.index + 1) % len(f.waypoints)
	}
	return pos
}
