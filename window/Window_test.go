package window

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"PongBot/core"
	"PongBot/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestInput_Bindings(t *testing.T) {
	down := map[ebiten.Key]bool{}
	in := &Input{
		pressed: func(k ebiten.Key) bool { return down[k] },
		closing: func() bool { return false },
	}

	cases := []struct {
		key  ebiten.Key
		want core.Key
	}{
		{ebiten.KeyW, core.KeyUp},
		{ebiten.KeyUp, core.KeyUp},
		{ebiten.KeyS, core.KeyDown},
		{ebiten.KeyDown, core.KeyDown},
		{ebiten.KeySpace, core.KeyStart},
		{ebiten.KeyQ, core.KeyQuit},
	}
	for _, tc := range cases {
		down = map[ebiten.Key]bool{tc.key: true}
		if !in.IsKeyPressed(tc.want) {
			t.Errorf("%v should press %v", tc.key, tc.want)
		}
		for _, other := range []core.Key{core.KeyUp, core.KeyDown, core.KeyStart, core.KeyQuit} {
			if other != tc.want && in.IsKeyPressed(other) {
				t.Errorf("%v also pressed %v", tc.key, other)
			}
		}
	}
}

func TestFonts_MissingFileFallsBack(t *testing.T) {
	f := NewFonts(filepath.Join(t.TempDir(), "missing.ttf"))
	if f.Loaded() {
		t.Fatal("font reported loaded")
	}
	face, scale := f.Face(26)
	if face == nil {
		t.Fatal("no fallback face")
	}
	if scale != 2 {
		t.Fatalf("fallback scale %v, want 2", scale)
	}
}

func TestLoadFont_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestApp_LayoutIsFixed(t *testing.T) {
	a := &App{}
	for _, size := range [][2]int{{640, 480}, {1920, 1080}} {
		w, h := a.Layout(size[0], size[1])
		if w != core.WindowWidth || h != core.WindowHeight {
			t.Fatalf("layout %dx%d, want %dx%d", w, h, core.WindowWidth, core.WindowHeight)
		}
	}
}
