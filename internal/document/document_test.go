package document

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plan.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestLoadRaster(t *testing.T) {
	path := writeTestPNG(t, 640, 480)

	bp, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if bp.Kind != KindRaster {
		t.Errorf("expected raster kind, got %v", bp.Kind)
	}
	if got := len(bp.Pages); got != 1 {
		t.Fatalf("expected 1 page, got %d", got)
	}

	page := bp.Pages[0]
	if page.Width != 640 || page.Height != 480 {
		t.Errorf("page size: expected 640x480, got %vx%v", page.Width, page.Height)
	}
	if page.Image == nil {
		t.Error("raster page must carry the decoded image")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("plan.dwg"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
