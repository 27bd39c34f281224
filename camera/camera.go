// This file is part of LearnOpenGL.
//
// LearnOpenGL is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LearnOpenGL is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LearnOpenGL.  If not, see <https://www.gnu.org/licenses/>.

package camera

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default values for a new camera.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultFov         = 45.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
)

// Limits of the camera orientation and field of view. All values in degrees.
const (
	MaxPitch = 89.0
	MinFov   = 1.0
	MaxFov   = 45.0
)

// Clipping planes of the projection matrix.
const (
	Near = 0.1
	Far  = 100.0
)

// Direction of movement relative to the direction the camera is facing.
type Direction int

// List of valid Direction values.
const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown direction"
}

// KeyDirection returns the Direction for the W, A, S and D keys. The key name
// is not case sensitive. The boolean is false for any other key.
func KeyDirection(key string) (Direction, bool) {
	switch strings.ToUpper(key) {
	case "W":
		return Forward, true
	case "S":
		return Backward, true
	case "A":
		return Left, true
	case "D":
		return Right, true
	}
	return Forward, false
}

// Camera is a first-person camera. It should be instantiated with NewCamera().
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	worldUp  mgl32.Vec3

	// degrees
	yaw   float32
	pitch float32
	fov   float32

	// units per second
	speed float32

	// degrees per pixel
	sensitivity float32
}

// NewCamera is the preferred method of initialisation for the Camera type.
// The camera is placed at (0, 0, 3) looking down the negative Z axis.
func NewCamera() *Camera {
	cam := &Camera{
		position:    mgl32.Vec3{0, 0, 3},
		worldUp:     mgl32.Vec3{0, 1, 0},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFov,
		speed:       DefaultSpeed,
		sensitivity: DefaultSensitivity,
	}
	cam.updateFront()
	return cam
}

func (cam *Camera) String() string {
	return fmt.Sprintf("pos: (%.2f, %.2f, %.2f) yaw: %.1f pitch: %.1f fov: %.1f",
		cam.position[0], cam.position[1], cam.position[2],
		cam.yaw, cam.pitch, cam.fov)
}

// updateFront recomputes the front vector from the yaw and pitch angles.
func (cam *Camera) updateFront() {
	yaw := mgl32.DegToRad(cam.yaw)
	pitch := mgl32.DegToRad(cam.pitch)
	cam.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Position of the camera in world space.
func (cam *Camera) Position() mgl32.Vec3 {
	return cam.position
}

// SetPosition moves the camera to a new position without changing its
// orientation.
func (cam *Camera) SetPosition(pos mgl32.Vec3) {
	cam.position = pos
}

// Front returns the unit vector in the direction the camera is facing.
func (cam *Camera) Front() mgl32.Vec3 {
	return cam.front
}

// Yaw returns the yaw angle in degrees. The value is not wrapped.
func (cam *Camera) Yaw() float32 {
	return cam.yaw
}

// Pitch returns the pitch angle in degrees.
func (cam *Camera) Pitch() float32 {
	return cam.pitch
}

// SetOrientation sets the yaw and pitch angles, in degrees. The pitch is
// clamped.
func (cam *Camera) SetOrientation(yaw float32, pitch float32) {
	cam.yaw = yaw
	cam.pitch = mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
	cam.updateFront()
}

// Fov returns the vertical field of view in degrees.
func (cam *Camera) Fov() float32 {
	return cam.fov
}

// Speed returns the movement speed in units per second.
func (cam *Camera) Speed() float32 {
	return cam.speed
}

// SetSpeed sets the movement speed. Values that are not positive are ignored.
func (cam *Camera) SetSpeed(speed float32) {
	if speed > 0 {
		cam.speed = speed
	}
}

// Sensitivity returns the number of degrees the camera turns per pixel of
// mouse motion.
func (cam *Camera) Sensitivity() float32 {
	return cam.sensitivity
}

// SetSensitivity sets the mouse sensitivity. Values that are not positive are
// ignored.
func (cam *Camera) SetSensitivity(sensitivity float32) {
	if sensitivity > 0 {
		cam.sensitivity = sensitivity
	}
}

// Move the camera in the direction for dt seconds.
func (cam *Camera) Move(dir Direction, dt float32) {
	velocity := cam.speed * dt

	switch dir {
	case Forward:
		cam.position = cam.position.Add(cam.front.Mul(velocity))
	case Backward:
		cam.position = cam.position.Sub(cam.front.Mul(velocity))
	case Left:
		cam.position = cam.position.Sub(cam.right().Mul(velocity))
	case Right:
		cam.position = cam.position.Add(cam.right().Mul(velocity))
	}
}

// right is the unit vector to the right of the direction the camera is
// facing. pitch never reaches 90° so front is never parallel to worldUp.
func (cam *Camera) right() mgl32.Vec3 {
	return cam.front.Cross(cam.worldUp).Normalize()
}

// Look turns the camera by the mouse motion, in pixels. Moving the mouse up
// (negative dy) raises the pitch.
func (cam *Camera) Look(dx float32, dy float32) {
	cam.yaw += dx * cam.sensitivity
	cam.pitch -= dy * cam.sensitivity
	cam.pitch = mgl32.Clamp(cam.pitch, -MaxPitch, MaxPitch)
	cam.updateFront()
}

// Zoom narrows the field of view by the mouse wheel movement.
func (cam *Camera) Zoom(dy float32) {
	cam.fov = mgl32.Clamp(cam.fov-dy, MinFov, MaxFov)
}

// View returns the right-handed look-at matrix for the camera.
func (cam *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(cam.position, cam.position.Add(cam.front), cam.worldUp)
}

// Projection returns the right-handed perspective matrix for the camera's
// field of view and the aspect ratio.
func (cam *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cam.fov), aspect, Near, Far)
}
