package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gridsim/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, []uint8{1, 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Black)
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBATreatsNonZeroAsAlive(t *testing.T) {
	buf := make([]byte, 12)
	on := color.NRGBA{R: 200, A: 255}
	FillBinaryRGBA(buf, []uint8{0, 3, 1}, on, nil)
	want := []byte{0, 0, 0, 0, 200, 0, 0, 255, 200, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

type stubSim struct{ cells []uint8 }

func (s *stubSim) Name() string    { return "stub" }
func (s *stubSim) Size() core.Size { return core.Size{W: 2, H: 1} }
func (s *stubSim) Reset(int64)     {}
func (s *stubSim) Step()           {}
func (s *stubSim) Cells() []uint8  { return s.cells }

func TestSimImageScaled(t *testing.T) {
	img := SimImage(&stubSim{cells: []uint8{1, 0}}, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(2, 2); got != DefaultOn {
		t.Fatalf("pixel (2,2) = %v, want on colour", got)
	}
	if got := img.RGBAAt(3, 0); got != DefaultOff {
		t.Fatalf("pixel (3,0) = %v, want off colour", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty PNG written")
	}
	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
