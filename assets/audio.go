package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/tilepaste/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Tone renders a sine sweep as 16-bit little-endian stereo PCM, the format
// audio.Context players consume. A short linear fade at both ends avoids
// clicks.
func Tone(sampleRate int, t config.ToneConfig) []byte {
	n := int(float64(sampleRate) * t.Seconds)
	if n <= 0 {
		return nil
	}
	fade := n / 10
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency + t.Slide*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 1.0
		if fade > 0 {
			if i < fade {
				amp = float64(i) / float64(fade)
			} else if i >= n-fade {
				amp = float64(n-1-i) / float64(fade)
			}
		}
		s := int16(math.Sin(phase) * amp * 0.6 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// AudioLoader handles synthesis and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders every configured effect so the first play is instant.
func (l *AudioLoader) PreloadSFX() {
	for id, tone := range config.Sound.Tones {
		l.sfxCache[id] = Tone(l.context.SampleRate(), tone)
	}
}

// LoadSFX returns a new player for id each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	pcm, ok := l.sfxCache[id]
	if !ok {
		tone, ok := config.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no tone configured for sound %d", id)
		}
		pcm = Tone(l.context.SampleRate(), tone)
		l.sfxCache[id] = pcm
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}
