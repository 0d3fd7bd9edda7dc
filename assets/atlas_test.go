package assets

import (
	"errors"
	"image"
	"testing"

	"github.com/automoto/tilepaste/config"
)

func TestAtlasLayout128(t *testing.T) {
	l, err := NewAtlasLayout(128, 128, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if l.Entries() != 64 || l.Columns != 8 || l.Rows != 8 {
		t.Fatalf("got %d entries (%dx%d), want 64 (8x8)", l.Entries(), l.Columns, l.Rows)
	}
	if _, err := l.Rect(63); err != nil {
		t.Errorf("entry 63: %v", err)
	}
	if _, err := l.Rect(64); !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("entry 64: err=%v, want ErrNoSuchEntry", err)
	}
	if err := l.Check(0, 1, 63, 64); !errors.Is(err, ErrNoSuchEntry) {
		t.Errorf("Check with 64: err=%v, want ErrNoSuchEntry", err)
	}
}

func TestAtlasLayoutRejects(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		tw, th  int
		wantErr error
	}{
		{"not divisible", 100, 128, 16, 16, ErrAtlasDimensions},
		{"zero tile", 128, 128, 0, 16, ErrAtlasDimensions},
		{"not square", 128, 64, 16, 16, ErrAtlasNotSquare},
		{"square count but not square grid", 32, 128, 16, 16, ErrAtlasNotSquare},
	}
	for _, c := range cases {
		if _, err := NewAtlasLayout(c.w, c.h, c.tw, c.th); !errors.Is(err, c.wantErr) {
			t.Errorf("%s: err=%v, want %v", c.name, err, c.wantErr)
		}
	}
}

func TestAtlasRect(t *testing.T) {
	l, _ := NewAtlasLayout(128, 128, 16, 16)
	cases := []struct {
		id   uint32
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{1, image.Rect(16, 0, 32, 16)},
		{8, image.Rect(0, 16, 16, 32)},
		{63, image.Rect(112, 112, 128, 128)},
	}
	for _, c := range cases {
		got, err := l.Rect(c.id)
		if err != nil || got != c.want {
			t.Errorf("Rect(%d)=%v,%v want %v", c.id, got, err, c.want)
		}
	}
}

func TestAtlasUV(t *testing.T) {
	l, _ := NewAtlasLayout(64, 64, 32, 32)
	u0, v0, u1, v1, err := l.UV(3)
	if err != nil {
		t.Fatal(err)
	}
	if u0 != 0.5 || v0 != 0.5 || u1 != 1 || v1 != 1 {
		t.Errorf("UV(3)=(%v,%v,%v,%v), want (0.5,0.5,1,1)", u0, v0, u1, v1)
	}
}

func TestEmbeddedLevels(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded levels")
	}
	l, err := LoadLevel(names[0])
	if err != nil {
		t.Fatalf("LoadLevel(%s): %v", names[0], err)
	}
	layout, _ := NewAtlasLayout(128, 128, 16, 16)
	if err := layout.Check(l.Cells...); err != nil {
		t.Errorf("level %s uses an id outside the atlas: %v", names[0], err)
	}
}

func TestToneLength(t *testing.T) {
	pcm := Tone(1000, config.ToneConfig{Frequency: 100, Seconds: 0.5})
	if len(pcm) != 500*4 {
		t.Fatalf("got %d bytes, want %d", len(pcm), 500*4)
	}
	// Faded in: the first frame is silent.
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Errorf("first sample not silent: %v", pcm[:4])
	}
	if Tone(1000, config.ToneConfig{Frequency: 100}) != nil {
		t.Error("zero-length tone should be nil")
	}
}
