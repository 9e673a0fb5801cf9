package fractal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitResult(t *testing.T, r *Renderer) Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	res, err := r.Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 60
	cfg.Height = 40
	cfg.MaxIter = 30
	cfg.Workers = 2
	return cfg
}

func TestRendererSubmitAndPoll(t *testing.T) {
	r := NewRenderer(smallConfig())
	if r.Field() != nil {
		t.Fatal("field before first render")
	}
	gen, err := r.ResetView(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	res := waitResult(t, r)
	if res.Generation != gen || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if r.Pending() {
		t.Fatal("renderer still pending after completion")
	}
	if r.Field() != res.Field || r.View() != DefaultView() {
		t.Fatal("result was not applied")
	}
	if _, ok := r.Poll(); ok {
		t.Fatal("Wait should have consumed the result")
	}
}

func TestRendererRejectsOverlappingRequests(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 200
	cfg.Height = 200
	r := NewRenderer(cfg)
	// Every point of this window is inside the set, so the render runs the
	// full budget per pixel and stays in flight for the rest of the test.
	inside := ViewWindow{XMin: -0.1, XMax: 0.1, YMin: -0.1, YMax: 0.1}
	slowGen, err := r.Submit(context.Background(), inside, 1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Submit(context.Background(), DefaultView(), 10); !errors.Is(err, ErrRenderInFlight) {
		t.Fatalf("second Submit err = %v, want ErrRenderInFlight", err)
	}
	if _, err := r.Zoom(context.Background(), 10, 10); !errors.Is(err, ErrRenderInFlight) {
		t.Fatalf("Zoom err = %v, want ErrRenderInFlight", err)
	}

	newGen, err := r.Replace(context.Background(), DefaultView(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if newGen <= slowGen {
		t.Fatalf("generation did not advance: %d -> %d", slowGen, newGen)
	}
	res := waitResult(t, r)
	if res.Generation != newGen {
		t.Fatalf("got generation %d, want %d", res.Generation, newGen)
	}
	if got := r.Field(); got == nil || got.MaxIter != 10 {
		t.Fatal("latest request was not the one applied")
	}
	if r.MaxIter() != 10 {
		t.Fatalf("MaxIter = %d", r.MaxIter())
	}
}

func TestRendererZoomUsesShownView(t *testing.T) {
	cfg := smallConfig()
	r := NewRenderer(cfg)
	if _, err := r.ResetView(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitResult(t, r)

	if _, err := r.Zoom(context.Background(), float64(cfg.Width)/2, float64(cfg.Height)/2); err != nil {
		t.Fatal(err)
	}
	res := waitResult(t, r)
	want, _ := Zoom(DefaultView(), float64(cfg.Width)/2, float64(cfg.Height)/2, cfg.Width, cfg.Height, cfg.Zoom)
	if res.View != want || r.View() != want {
		t.Fatalf("view = %+v, want %+v", r.View(), want)
	}
}

func TestRendererValidatesBeforeQueueing(t *testing.T) {
	r := NewRenderer(smallConfig())
	if _, err := r.SetMaxIter(context.Background(), 0); err == nil {
		t.Fatal("expected an error for a zero budget")
	}
	if r.Pending() {
		t.Fatal("invalid request left the renderer pending")
	}
	if _, err := r.Wait(context.Background()); err == nil {
		t.Fatal("Wait without a submission should fail")
	}
}
