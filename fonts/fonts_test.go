package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(12); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{Title, Label, Small, HUD} {
		if name.Get() == nil {
			t.Errorf("%s not loaded", name)
		}
	}
}

func TestGetMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("missing font should panic")
		}
	}()
	FontName("nope").Get()
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 10); err == nil {
		t.Error("garbage should not parse")
	}
}
