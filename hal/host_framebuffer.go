package hal

import (
	"sync"

	"snowflake/flakegl"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	presented uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presented++
	return nil
}

func (f *hostFramebuffer) frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

// FramebufferTarget wraps an RGB565 framebuffer as a software render target.
func FramebufferTarget(fb Framebuffer) (*flakegl.RGB565Target, error) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil, ErrNoGraphics
	}
	if fb.Width() <= 0 || fb.Height() <= 0 || fb.Buffer() == nil {
		return nil, ErrNoGraphics
	}
	return &flakegl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}, nil
}
