package platform

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-logr/logr"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 255, G: 140, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageLoader_LoadScalesAndCaches(t *testing.T) {
	data := pngBytes(t, 640, 480)
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	loader := NewImageLoader(srv.Client(), logr.Discard(), 100, 100)

	res, err := loader.Load(context.Background(), srv.URL+"/recipeImages/716429-312x231.jpg")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if res.Name() != "716429-312x231.png" {
		t.Errorf("unexpected resource name %q", res.Name())
	}

	img, err := png.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		t.Fatalf("thumbnail is not a PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 100 || b.Dy() > 100 {
		t.Errorf("thumbnail %dx%d exceeds 100x100", b.Dx(), b.Dy())
	}
	if b.Dx() != 100 {
		t.Errorf("expected width 100 for a landscape image, got %d", b.Dx())
	}

	if _, err := loader.Load(context.Background(), srv.URL+"/recipeImages/716429-312x231.jpg"); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected one fetch, got %d", hits)
	}
}

func TestImageLoader_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	loader := NewImageLoader(srv.Client(), logr.Discard(), 100, 100)

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"not found", srv.URL + "/missing.jpg"},
		{"garbage", srv.URL + "/garbage.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(context.Background(), tt.url); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestThumbnailName(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://img.spoonacular.com/recipes/1-312x231.jpg", "1-312x231.png"},
		{"https://example.com/photo", "photo.png"},
		{"https://example.com/", "recipe.png"},
	}

	for _, tt := range tests {
		if got := thumbnailName(tt.url); got != tt.expected {
			t.Errorf("thumbnailName(%q) = %q, expected %q", tt.url, got, tt.expected)
		}
	}
}

func TestImageLoader_CancelledCallerDoesNotFailOthers(t *testing.T) {
	data := pngBytes(t, 64, 64)
	arrived := make(chan struct{})
	release := make(chan struct{})
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			close(arrived)
		}
		<-release
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	defer func() {
		select {
		case <-release:
		default:
			close(release)
		}
	}()

	loader := NewImageLoader(srv.Client(), logr.Discard(), 32, 32)
	imageURL := srv.URL + "/shared.png"

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := loader.Load(ctx, imageURL)
		firstErr <- err
	}()
	<-arrived

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected the cancelled caller to get context.Canceled, got %v", err)
	}

	secondRes := make(chan error, 1)
	go func() {
		res, err := loader.Load(context.Background(), imageURL)
		if err == nil && res == nil {
			err = errors.New("nil resource")
		}
		secondRes <- err
	}()

	close(release)
	if err := <-secondRes; err != nil {
		t.Fatalf("second caller failed: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected one shared fetch, got %d", got)
	}
}
