package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCollect
	SoundBump
	SoundMenuHover
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Enabled       bool // Off in headless runs; the audio device is opened lazily
}

// ToneConfig describes a synthesized effect
type ToneConfig struct {
	Frequency float64 // Hz at the start of the tone
	Slide     float64 // Hz added by the end of the tone
	Seconds   float64
	Volume    float64 // Multiplier on the SFX volume
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		Enabled:       true,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundCollect:    {Frequency: 660, Slide: 440, Seconds: 0.09, Volume: 0.8},
			SoundBump:       {Frequency: 110, Slide: -30, Seconds: 0.05, Volume: 0.6},
			SoundMenuHover:  {Frequency: 520, Seconds: 0.03, Volume: 0.4},
			SoundMenuSelect: {Frequency: 440, Slide: 220, Seconds: 0.12, Volume: 1.0},
		},
	}
}
