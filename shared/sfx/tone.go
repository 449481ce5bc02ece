// Package sfx synthesizes the game's sound effects as raw PCM.
package sfx

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/flapper/config"
)

// BytesPerFrame is one 16-bit stereo sample pair.
const BytesPerFrame = 4

// decay controls how fast a tone fades after its attack.
const decay = 5.0

// Synthesize renders spec as signed 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume.
func Synthesize(spec cfg.ToneSpec, sampleRate int) []byte {
	frames := int(spec.Duration * float64(sampleRate))
	if frames <= 0 || sampleRate <= 0 {
		return nil
	}

	buf := make([]byte, frames*BytesPerFrame)
	phase := 0.0
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		freq := spec.StartHz + (spec.EndHz-spec.StartHz)*t/spec.Duration

		wave := math.Sin(phase)
		if spec.Square {
			wave = math.Copysign(1, wave)
			if phase == 0 {
				wave = 0
			}
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := wave * envelope(spec, t) * spec.Volume
		v = math.Max(-1, math.Min(1, v))
		s := uint16(int16(v * math.MaxInt16))

		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame+2:], s)
	}
	return buf
}

// envelope is a linear attack followed by an exponential decay.
func envelope(spec cfg.ToneSpec, t float64) float64 {
	if spec.Attack > 0 && t < spec.Attack {
		return t / spec.Attack
	}
	rest := spec.Duration - spec.Attack
	if rest <= 0 {
		return 1
	}
	return math.Exp(-decay * (t - spec.Attack) / rest)
}
