package thumbnail

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nfnt/resize"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultSize is the edge length of a thumbnail in pixels.
	DefaultSize = 256

	defaultCacheSize = 64
	defaultUserAgent = "cakes/0.1"
	requestTimeout   = 15 * time.Second
	maxImageBytes    = 16 << 20
)

// Loader fetches and scales row images.
type Loader struct {
	http      *http.Client
	size      uint
	userAgent string
	cache     *fifoCache
	group     singleflight.Group
}

// Option customises a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(l *Loader) {
		if hc != nil {
			l.http = hc
		}
	}
}

// WithSize sets the thumbnail edge length. Non-positive values are ignored.
func WithSize(px int) Option {
	return func(l *Loader) {
		if px > 0 {
			l.size = uint(px)
		}
	}
}

// NewLoader builds a Loader with a 256 pixel edge and a small cache.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		http:      &http.Client{Timeout: requestTimeout},
		size:      DefaultSize,
		userAgent: defaultUserAgent,
		cache:     newFIFOCache(defaultCacheSize),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the thumbnail for rawURL, downloading it on a cache miss.
func (l *Loader) Load(ctx context.Context, rawURL string) (image.Image, error) {
	key := strings.TrimSpace(rawURL)
	if key == "" {
		return nil, fmt.Errorf("image url is empty")
	}
	if img, ok := l.cache.get(key); ok {
		return img, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		if img, ok := l.cache.get(key); ok {
			return img, nil
		}
		img, err := l.fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		thumb := Thumbnail(img, l.size)
		l.cache.put(key, thumb)
		return thumb, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

func (l *Loader) fetch(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch image %s: status %d", rawURL, resp.StatusCode)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Thumbnail center-crops img to a square and scales it to size×size.
func Thumbnail(img image.Image, size uint) image.Image {
	if size == 0 {
		size = DefaultSize
	}
	return resize.Resize(size, size, CenterCrop(img), resize.Lanczos3)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// CenterCrop returns the largest centred square of img.
func CenterCrop(img image.Image) image.Image {
	b := img.Bounds()
	edge := b.Dx()
	if b.Dy() < edge {
		edge = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-edge)/2
	y0 := b.Min.Y + (b.Dy()-edge)/2
	square := image.Rect(x0, y0, x0+edge, y0+edge)
	if square.Eq(b) {
		return img
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(square)
	}
	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	draw.Draw(dst, dst.Bounds(), img, square.Min, draw.Src)
	return dst
}
