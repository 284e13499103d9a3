package platform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"fyne.io/fyne/v2"
	"github.com/go-logr/logr"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/singleflight"
)

// Thumbnail defaults
const (
	DefaultThumbnailWidth  = 312
	DefaultThumbnailHeight = 231
	DefaultImageCacheSize  = 128
	DefaultImageTimeout    = 20 * time.Second
	maxImageBytes          = 10 << 20
)

// ImageLoader downloads recipe images and scales them to thumbnails.
// Results are cached by URL and concurrent loads of one URL share a fetch.
// The shared fetch runs on its own deadline, so a caller that gives up does
// not fail the others.
type ImageLoader struct {
	http    *http.Client
	log     logr.Logger
	width   uint
	height  uint
	timeout time.Duration
	cache   *lru.Cache[string, fyne.Resource]
	group   singleflight.Group
}

// NewImageLoader creates a loader producing thumbnails of at most
// width x height pixels.
func NewImageLoader(client *http.Client, log logr.Logger, width, height uint) *ImageLoader {
	if client == nil {
		client = &http.Client{Timeout: DefaultImageTimeout}
	}
	cache, _ := lru.New[string, fyne.Resource](DefaultImageCacheSize)
	return &ImageLoader{
		http:    client,
		log:     log.WithName("images"),
		width:   width,
		height:  height,
		timeout: DefaultImageTimeout,
		cache:   cache,
	}
}

// Load returns a PNG thumbnail resource for the image at imageURL.
func (l *ImageLoader) Load(ctx context.Context, imageURL string) (fyne.Resource, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}
	if res, ok := l.cache.Get(imageURL); ok {
		return res, nil
	}

	ch := l.group.DoChan(imageURL, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		res, err := l.fetch(fetchCtx, imageURL)
		if err != nil {
			l.log.V(1).Info("image load failed", "url", imageURL, "error", err.Error())
			return nil, err
		}
		l.cache.Add(imageURL, res)
		return res, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(fyne.Resource), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *ImageLoader) fetch(ctx context.Context, imageURL string) (fyne.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := resize.Thumbnail(l.width, l.height, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	l.log.V(2).Info("thumbnail ready", "url", imageURL, "format", format,
		"width", thumb.Bounds().Dx(), "height", thumb.Bounds().Dy())

	return fyne.NewStaticResource(thumbnailName(imageURL), buf.Bytes()), nil
}

// thumbnailName derives a resource name from the image URL.
func thumbnailName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	base := path.Base(p)
	if ext := path.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if base == "" || base == "." || base == "/" {
		base = "recipe"
	}
	return base + ".png"
}
