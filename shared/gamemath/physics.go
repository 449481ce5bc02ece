package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyGravity integrates a y-up vertical speed over dt and clamps the fall
// speed to maxFall (a positive magnitude).
func ApplyGravity(speedY, gravity, maxFall, dt float64) float64 {
	speedY -= gravity * dt
	if speedY < -maxFall {
		return -maxFall
	}
	return speedY
}
