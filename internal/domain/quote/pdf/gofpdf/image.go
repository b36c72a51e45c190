package gofpdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// EmbedPNG places a bill snapshot on a single page of A4 width whose height
// follows the image's aspect ratio.
func EmbedPNG(img []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, errors.New("empty snapshot")
	}
	height := float64(cfg.Height) * pageWidth / float64(cfg.Width)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("bill", opts, bytes.NewReader(img))
	pdf.ImageOptions("bill", 0, 0, pageWidth, height, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
