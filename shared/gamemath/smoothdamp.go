package gamemath

import "github.com/yohamta/donburi/features/math"

// SmoothDamp moves current toward target with a critically damped spring that
// settles in roughly smoothTime seconds. velocity is carried between calls.
// maxSpeed <= 0 means unlimited. A smoothTime of zero snaps to the target.
func SmoothDamp(current, target, velocity, smoothTime, maxSpeed, dt float64) (pos, vel float64) {
	if smoothTime <= 0 {
		return target, 0
	}
	if dt <= 0 {
		return current, velocity
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target

	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		change = Clamp(change, -maxChange, maxChange)
	}
	target = current - change

	temp := (velocity + omega*change) * dt
	vel = (velocity - omega*temp) * exp
	pos = target + (change+temp)*exp

	// Never pass the target.
	if (originalTo-current > 0) == (pos > originalTo) {
		pos = originalTo
		vel = (pos - originalTo) / dt
	}
	return pos, vel
}

// SmoothDampVec2 applies SmoothDamp per axis with a shared smoothTime and
// per-axis speed limit.
func SmoothDampVec2(current, target, velocity math.Vec2, smoothTime, maxSpeed, dt float64) (pos, vel math.Vec2) {
	pos.X, vel.X = SmoothDamp(current.X, target.X, velocity.X, smoothTime, maxSpeed, dt)
	pos.Y, vel.Y = SmoothDamp(current.Y, target.Y, velocity.Y, smoothTime, maxSpeed, dt)
	return pos, vel
}
