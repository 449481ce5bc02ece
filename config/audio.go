package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlap
	SoundScore
	SoundHit
	SoundFall
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneSpec describes a generated sound effect: a sweep from StartHz to EndHz
// shaped by a linear attack and exponential decay.
type ToneSpec struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Attack   float64 // seconds
	Square   bool    // square wave instead of sine
	Volume   float64 // 0.0 - 1.0 before the SFX volume is applied
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to tone specs
type SoundConfig struct {
	Tones map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundFlap:         {StartHz: 420, EndHz: 760, Duration: 0.09, Attack: 0.005, Volume: 0.5},
			SoundScore:        {StartHz: 880, EndHz: 1320, Duration: 0.16, Attack: 0.005, Square: true, Volume: 0.25},
			SoundHit:          {StartHz: 180, EndHz: 60, Duration: 0.25, Attack: 0.002, Square: true, Volume: 0.5},
			SoundFall:         {StartHz: 600, EndHz: 150, Duration: 0.45, Attack: 0.01, Volume: 0.4},
			SoundMenuNavigate: {StartHz: 660, EndHz: 660, Duration: 0.05, Attack: 0.003, Square: true, Volume: 0.2},
			SoundMenuSelect:   {StartHz: 660, EndHz: 990, Duration: 0.12, Attack: 0.003, Square: true, Volume: 0.25},
		},
	}
}
