package config

// SettingsMenuConfig contains the in-menu sound settings
type SettingsMenuConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
	}
}

// NextVolumeStep returns the step after the one closest to volume, wrapping
// back to silence after the loudest.
func NextVolumeStep(volume float64) float64 {
	steps := SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return volume
	}
	closest := 0
	for i, s := range steps {
		if abs(s-volume) < abs(steps[closest]-volume) {
			closest = i
		}
	}
	return steps[(closest+1)%len(steps)]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
