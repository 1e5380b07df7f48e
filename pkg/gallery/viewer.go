// Package gallery models a paged image grid with a fullscreen viewer.
package gallery

import (
	"brand-showcase/pkg/apperrors"
)

// PageSize is the number of thumbnails shown per grid page
const PageSize = 9

// Mode is the current view of the gallery
type Mode int

const (
	// Grid shows one page of thumbnails.
	Grid Mode = iota
	// Fullscreen shows a single image.
	Fullscreen
)

func (m Mode) String() string {
	if m == Fullscreen {
		return "fullscreen"
	}
	return "grid"
}

// Viewer tracks the grid page and the fullscreen image of a gallery
type Viewer struct {
	images []string
	mode   Mode
	page   int
	index  int
}

// NewViewer starts in grid mode on the first page
func NewViewer(images []string) *Viewer {
	return &Viewer{images: images, page: 1}
}

// Restore rebuilds a viewer from a page number and an optional 0-based image index
func Restore(images []string, page int, index *int) *Viewer {
	v := NewViewer(images)
	v.GoToPage(page)
	if index != nil {
		_ = v.Open(*index)
	}
	return v
}

// Mode returns the current mode
func (v *Viewer) Mode() Mode { return v.mode }

// Page returns the 1-based grid page
func (v *Viewer) Page() int { return v.page }

// Index returns the fullscreen image index
func (v *Viewer) Index() int { return v.index }

// Len returns the number of images
func (v *Viewer) Len() int { return len(v.images) }

// Pages returns the number of grid pages, at least 1
func (v *Viewer) Pages() int {
	if len(v.images) == 0 {
		return 1
	}
	return (len(v.images) + PageSize - 1) / PageSize
}

// GoToPage moves the grid to page, clamped to the valid range
func (v *Viewer) GoToPage(page int) {
	v.page = min(max(page, 1), v.Pages())
}

// PageImages returns the images of the current grid page and the global index of the first one
func (v *Viewer) PageImages() ([]string, int) {
	start := (v.page - 1) * PageSize
	if start >= len(v.images) {
		return nil, start
	}
	end := min(start+PageSize, len(v.images))
	return v.images[start:end], start
}

// Current returns the fullscreen image
func (v *Viewer) Current() (string, error) {
	if len(v.images) == 0 {
		return "", apperrors.ErrEmptyGallery
	}
	return v.images[v.index], nil
}

// Open switches to fullscreen on image i, wrapped into range
func (v *Viewer) Open(i int) error {
	n := len(v.images)
	if n == 0 {
		return apperrors.ErrEmptyGallery
	}
	v.index = ((i % n) + n) % n
	v.mode = Fullscreen
	return nil
}

// Next moves to the following image, wrapping to the first
func (v *Viewer) Next() error {
	if len(v.images) == 0 {
		return apperrors.ErrEmptyGallery
	}
	v.index = (v.index + 1) % len(v.images)
	return nil
}

// Prev moves to the previous image, wrapping to the last
func (v *Viewer) Prev() error {
	n := len(v.images)
	if n == 0 {
		return apperrors.ErrEmptyGallery
	}
	v.index = (v.index - 1 + n) % n
	return nil
}

// Close returns to the grid page holding the current image
func (v *Viewer) Close() error {
	if len(v.images) == 0 {
		return apperrors.ErrEmptyGallery
	}
	v.mode = Grid
	v.page = v.index/PageSize + 1
	return nil
}

// NextIndex is the index Next would move to
func (v *Viewer) NextIndex() int {
	if len(v.images) == 0 {
		return 0
	}
	return (v.index + 1) % len(v.images)
}

// PrevIndex is the index Prev would move to
func (v *Viewer) PrevIndex() int {
	n := len(v.images)
	if n == 0 {
		return 0
	}
	return (v.index - 1 + n) % n
}
