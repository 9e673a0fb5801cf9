package fractal

import (
	"context"
	"fmt"
	"runtime"

	"gridsim/internal/core"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxIter is the iteration budget used when none is configured.
const DefaultMaxIter = 100

// IterationField holds one escape count per pixel in row-major order.
type IterationField struct {
	Width   int
	Height  int
	MaxIter int
	Counts  []int
}

// At returns the escape count of pixel (px, py).
func (f *IterationField) At(px, py int) int {
	return f.Counts[py*f.Width+px]
}

// Inside reports whether pixel (px, py) never escaped within the budget.
func (f *IterationField) Inside(px, py int) bool {
	return f.At(px, py) == f.MaxIter
}

// EscapeTime iterates z = z^2 + c from z = 0 and returns the number of updates
// performed before |z|^2 exceeded 4, or maxIter when it never did. Orbits that
// stay on the circle |z| = 2, such as c = -2, are members.
func EscapeTime(cx, cy float64, maxIter int) int {
	var zx, zy float64
	iter := 0
	for zx*zx+zy*zy <= 4 && iter < maxIter {
		xtemp := zx*zx - zy*zy + cx
		zy = 2*zx*zy + cy
		zx = xtemp
		iter++
	}
	return iter
}

func validate(width, height int, view ViewWindow, maxIter int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster %dx%d: %w", width, height, core.ErrInvalidDimension)
	}
	if maxIter <= 0 {
		return fmt.Errorf("max iterations %d: %w", maxIter, core.ErrInvalidIterationBudget)
	}
	return view.Validate()
}

func newField(width, height, maxIter int) *IterationField {
	return &IterationField{Width: width, Height: height, MaxIter: maxIter, Counts: make([]int, width*height)}
}

func renderRow(f *IterationField, py int, view ViewWindow) {
	row := f.Counts[py*f.Width : (py+1)*f.Width]
	for px := range row {
		cx, cy := view.PixelToComplex(float64(px), float64(py), f.Width, f.Height)
		row[px] = EscapeTime(cx, cy, f.MaxIter)
	}
}

// Render computes the escape count of every pixel of a width x height raster
// laid over view.
func Render(width, height int, view ViewWindow, maxIter int) (*IterationField, error) {
	if err := validate(width, height, view, maxIter); err != nil {
		return nil, err
	}
	f := newField(width, height, maxIter)
	for py := 0; py < height; py++ {
		renderRow(f, py, view)
	}
	return f, nil
}

// RenderParallel produces the same field as Render with rows spread across
// workers goroutines. It stops early when ctx is cancelled.
func RenderParallel(ctx context.Context, width, height int, view ViewWindow, maxIter, workers int) (*IterationField, error) {
	if err := validate(width, height, view, maxIter); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	f := newField(width, height, maxIter)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for py := 0; py < height; py++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRow(f, py, view)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f, nil
}
