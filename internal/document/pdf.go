package document

import (
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

func loadPDF(path string) (*Blueprint, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page tree: %w", err)
	}

	bp := &Blueprint{
		Path: path,
		Kind: KindPDF,
	}
	for i := 0; i < numPages; i++ {
		pageDict, err := pagetree.GetPage(r, i)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i+1, err)
		}

		width, height := 612.0, 792.0 // US Letter fallback
		mediaBox, err := pdf.GetRectangle(r, pageDict["MediaBox"])
		if err == nil && mediaBox != nil {
			width = mediaBox.URx - mediaBox.LLx
			height = mediaBox.URy - mediaBox.LLy
		}

		bp.Pages = append(bp.Pages, PageInfo{
			Index:  i,
			Width:  width,
			Height: height,
		})
	}

	return bp, nil
}
