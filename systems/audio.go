package systems

import (
	"log"
	"sync"

	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMutedVolume  float64 // volume to restore on unmute
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX generates all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("[audio] preload failed: %v", err)
		}
	}
}

// UpdateAudio plays the sound effects queued this tick and handles the mute key
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if GetAction(GetOrCreateInput(e), cfg.ActionMute).JustPressed {
		ToggleMute()
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
	audioData.SFXVolume = globalSFXVolume
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// ToggleMute silences sound effects, or restores the volume from before muting.
func ToggleMute() {
	if globalSFXVolume > 0 {
		globalMutedVolume = globalSFXVolume
		globalSFXVolume = 0
		return
	}
	globalSFXVolume = globalMutedVolume
	if globalSFXVolume <= 0 {
		globalSFXVolume = cfg.Audio.DefaultSFXVol
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
