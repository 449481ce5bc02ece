package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/shared/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache generated PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX generates a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	spec, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	pcm := sfx.Synthesize(spec, l.context.SampleRate())
	if len(pcm) == 0 {
		return nil, fmt.Errorf("tone for sound %d is empty", id)
	}

	l.sfxCache[id] = pcm
	return pcm, nil
}
