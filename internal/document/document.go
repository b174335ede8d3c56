// Package document loads blueprint files and exposes the page geometry the
// viewer and CLI share. Raster blueprints carry the decoded image; PDF
// blueprints carry page dimensions only, rasterization is left to the viewer.
package document

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Raster formats beyond the stdlib set.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Kind identifies the blueprint source format
type Kind int

const (
	KindRaster Kind = iota
	KindPDF
)

// String returns the kind name
func (k Kind) String() string {
	if k == KindPDF {
		return "pdf"
	}
	return "raster"
}

// PageInfo describes one page of a blueprint. Width and height are pixels for
// raster pages and PDF points (1/72 inch) for PDF pages. Image is nil for PDF
// pages.
type PageInfo struct {
	Index  int
	Width  float64
	Height float64
	Image  image.Image
}

// Blueprint is a loaded blueprint document
type Blueprint struct {
	Path  string
	Kind  Kind
	Pages []PageInfo
}

// Load reads a blueprint file, dispatching on the file extension.
// Supported: .png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff, .pdf.
func Load(path string) (*Blueprint, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return loadRaster(path)
	case ".pdf":
		return loadPDF(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected an image or .pdf)", ext)
	}
}

func loadRaster(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	return &Blueprint{
		Path: path,
		Kind: KindRaster,
		Pages: []PageInfo{{
			Index:  0,
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
			Image:  img,
		}},
	}, nil
}
