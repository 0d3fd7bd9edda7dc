package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/tilepaste/config"
)

func TestNextOption(t *testing.T) {
	options := []string{"pan", "follow"}
	tests := []struct {
		current string
		want    string
	}{
		{"pan", "follow"},
		{"follow", "pan"},
		{"bogus", "pan"},
		{"", "pan"},
	}
	for _, tt := range tests {
		if got := nextOption(options, tt.current); got != tt.want {
			t.Errorf("nextOption(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
	if got := nextOption(nil, "pan"); got != "pan" {
		t.Errorf("no options: got %q", got)
	}
}

func TestApplySettings(t *testing.T) {
	withConfig(t, "discrete", "follow", 5, 5)
	vol := GetSFXVolume()
	t.Cleanup(func() { SetSFXVolume(vol) })

	applySettings(&SavedSettings{Movement: "kinematic", Camera: "pan", SFXVolume: 0.25})
	if cfg.Player.Movement != "kinematic" || cfg.Camera.Policy != "pan" {
		t.Errorf("got %s/%s, want kinematic/pan", cfg.Player.Movement, cfg.Camera.Policy)
	}
	if GetSFXVolume() != 0.25 {
		t.Errorf("volume %v, want 0.25", GetSFXVolume())
	}

	applySettings(&SavedSettings{Movement: "teleport", Camera: "orbit", SFXVolume: 0.5, Muted: true})
	if cfg.Player.Movement != "kinematic" || cfg.Camera.Policy != "pan" {
		t.Errorf("unknown names overwrote settings: %s/%s", cfg.Player.Movement, cfg.Camera.Policy)
	}
	if cfg.Audio.Enabled {
		t.Error("muted settings left audio enabled")
	}
	if GetSFXVolume() != 0.5 {
		t.Errorf("volume %v, want 0.5 kept for unmuting", GetSFXVolume())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	vol := GetSFXVolume()
	t.Cleanup(func() { SetSFXVolume(vol) })

	for _, muted := range []bool{true, false} {
		withConfig(t, "kinematic", "pan", 5, 5)
		cfg.Audio.Enabled = !muted
		SetSFXVolume(0.3)

		data, err := json.Marshal(snapshotSettings(true))
		if err != nil {
			t.Fatal(err)
		}
		var saved SavedSettings
		if err := json.Unmarshal(data, &saved); err != nil {
			t.Fatal(err)
		}
		if saved.Muted != muted || !saved.Fullscreen {
			t.Errorf("saved %+v, want muted=%v fullscreen", saved, muted)
		}

		cfg.Player.Movement, cfg.Camera.Policy = "discrete", "follow"
		cfg.Audio.Enabled = muted
		SetSFXVolume(1)
		applySettings(&saved)

		if cfg.Audio.Enabled == muted {
			t.Errorf("muted=%v: audio enabled %v after reload", muted, cfg.Audio.Enabled)
		}
		if cfg.Player.Movement != "kinematic" || cfg.Camera.Policy != "pan" || GetSFXVolume() != 0.3 {
			t.Errorf("reloaded %s/%s volume %v", cfg.Player.Movement, cfg.Camera.Policy, GetSFXVolume())
		}
	}
}

func TestPersistenceWithoutStorage(t *testing.T) {
	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("LoadSettings = %v, %v; want nothing saved", s, err)
	}
	if got := LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore = %d", got)
	}
	if err := SaveHighScore(10); err != nil {
		t.Errorf("SaveHighScore: %v", err)
	}
}
