package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestGridWrapAndSet(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(-1, -1, true)
	if !g.Alive(2, 3) {
		t.Fatal("Set(-1,-1) should wrap to (2,3)")
	}
	if !g.Alive(5, 7) {
		t.Fatal("Alive(5,7) should wrap to (2,3)")
	}
	if i, j := g.Wrap(3, 4); i != 0 || j != 0 {
		t.Fatalf("Wrap(3,4) = (%d,%d), want (0,0)", i, j)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.Set(0, 1, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal source")
	}
	c.Set(1, 1, true)
	if g.Alive(1, 1) {
		t.Fatal("mutating the clone changed the source")
	}
	if c.Equal(g) {
		t.Fatal("grids with different cells reported equal")
	}
}

func TestGridEqualDimensions(t *testing.T) {
	a, _ := NewGrid(2, 3)
	b, _ := NewGrid(3, 2)
	if a.Equal(b) {
		t.Fatal("grids with different dimensions reported equal")
	}
}

func TestGridFillBinaryAndString(t *testing.T) {
	g, _ := NewGrid(2, 3)
	g.Set(0, 0, true)
	g.Set(1, 2, true)
	buf := make([]uint8, 6)
	g.FillBinary(buf)
	want := []uint8{1, 0, 0, 0, 0, 1}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
	if got := g.String(); got != "#..\n..#\n" {
		t.Fatalf("String() = %q", got)
	}
}
