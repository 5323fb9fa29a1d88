// Package bar renders the loading indicator as a thin strip laid over a
// window's content. It is the host-side element the indicator controller
// animates: opacity maps to fill alpha, translation to horizontal position
// across the window canvas.
package bar

import (
	"image/color"
	"sync"

	"loadbar/internal/core/indicator"
	"loadbar/internal/core/keyframe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Bar is a fyne-backed indicator element.
type Bar struct {
	mu     sync.Mutex
	window fyne.Window
	rect   *canvas.Rectangle
	fill   color.NRGBA
	height float32
	frame  keyframe.Frame
}

// New creates a bar strip for the given window. The strip starts transparent
// and off-screen; attach it over the window content with Overlay.
func New(window fyne.Window) *Bar {
	bar := &Bar{
		window: window,
		fill:   color.NRGBA{R: 0x22, G: 0x99, B: 0xdd, A: 0xff},
		height: 3,
		frame:  keyframe.Frame{Opacity: 0, Translate: -1},
	}
	bar.rect = canvas.NewRectangle(color.NRGBA{})
	return bar
}

// Overlay stacks the indicator strip above the provided content.
func (bar *Bar) Overlay(content fyne.CanvasObject) fyne.CanvasObject {
	return container.NewStack(content, container.NewWithoutLayout(bar.rect))
}

// Apply implements indicator.Element. It may be called from a playback
// goroutine, so the canvas update is marshalled to the fyne render thread.
func (bar *Bar) Apply(frame keyframe.Frame) {
	bar.mu.Lock()
	bar.frame = frame
	fill := bar.fill
	height := bar.height
	bar.mu.Unlock()

	fill.A = opacityToAlpha(frame.Opacity)
	fyne.Do(func() {
		width := bar.window.Canvas().Size().Width
		bar.rect.FillColor = fill
		bar.rect.Resize(fyne.NewSize(width, height))
		bar.rect.Move(fyne.NewPos(float32(frame.Translate)*width, 0))
		bar.rect.Refresh()
	})
}

// Snapshot implements indicator.Element.
func (bar *Bar) Snapshot() keyframe.Frame {
	bar.mu.Lock()
	defer bar.mu.Unlock()
	return bar.frame
}

// SetStyle implements indicator.Styler. The bar interprets the subset of
// style keys it can express on a canvas rectangle; placement keys such as
// position and width are fixed by the overlay layout and ignored.
func (bar *Bar) SetStyle(style indicator.Style) {
	bar.mu.Lock()
	if value, ok := style["background"]; ok {
		if parsed, ok := parseHexColor(value); ok {
			bar.fill = parsed
		}
	}
	if value, ok := style["height"]; ok {
		if pixels, ok := parsePixels(value); ok {
			bar.height = pixels
		}
	}
	frame := bar.frame
	if value, ok := style["opacity"]; ok {
		if opacity, ok := parseFraction(value); ok {
			frame.Opacity = opacity
		}
	}
	if value, ok := style["transform"]; ok {
		if translate, ok := parseTranslateX(value); ok {
			frame.Translate = translate
		}
	}
	bar.frame = frame
	bar.mu.Unlock()

	bar.Apply(frame)
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
