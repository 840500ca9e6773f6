// seehuhn.de/go/contour - isolines of two-dimensional scalar fields
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command genpdf draws the contours of all test cases into PDF files, one
// page per test case.  With --png, the PDF files are also rendered to PNG
// images using Ghostscript.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const (
	scale  = 24.0 // PDF units per sample, if the test case has no CTM
	margin = 12.0
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		outDir  string
		png     bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "genpdf",
		Short:        "Draw the contours of all test cases into PDF files",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			contour.SetLogger(slog.New(logger))
			return run(cmd.Context(), logger, outDir, png)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "testdata/contours", "output directory")
	cmd.Flags().BoolVar(&png, "png", false, "render PNG images using Ghostscript")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run(ctx context.Context, logger *log.Logger, outDir string, png bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(ctx, tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			logger.Info("wrote", "file", pdfPath, "levels", len(tc.Levels))

			if png {
				pngPath := filepath.Join(outDir, name+".png")
				if err := renderPNG(ctx, pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				logger.Debug("rendered", "file", pngPath)
			}
		}
	}
	return nil
}

func generatePDF(ctx context.Context, tc testcases.TestCase, pdfPath string) error {
	f, err := contour.NewField(tc.Data)
	if err != nil {
		return err
	}

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Matrix{scale, 0, 0, scale, 0, 0}
	}

	e := contour.NewEngine(f, &contour.Options{Transform: ctm})
	defer e.Close()
	paths, err := e.Contours(ctx, tc.Levels)
	if err != nil {
		return err
	}

	box := transformRect(ctm, f.Bounds())
	width := box.URx - box.LLx + 2*margin
	height := box.URy - box.LLy + 2*margin
	paper := &pdf.Rectangle{URx: width, URy: height}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, 1, margin - box.LLx, margin - box.LLy})

	// outline of the sampled area
	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(0.5)
	page.Rectangle(box.LLx, box.LLy, box.URx-box.LLx, box.URy-box.LLy)
	page.Stroke()

	page.SetLineWidth(1.5)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for i, p := range paths {
		if len(p.Cmds) == 0 {
			continue
		}
		page.SetStrokeColor(color.DeviceGray(shade(i, len(paths))))
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// shade returns the gray level for the i-th of n contour levels, from
// black for the first level to mid-gray for the last.
func shade(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return 0.6 * float64(i) / float64(n-1)
}

// transformRect returns the bounding box of r after applying m.
func transformRect(m matrix.Matrix, r rect.Rect) rect.Rect {
	corners := [4][2]float64{
		{r.LLx, r.LLy}, {r.URx, r.LLy}, {r.URx, r.URy}, {r.LLx, r.URy},
	}
	var box rect.Rect
	for i, c := range corners {
		x := m[0]*c[0] + m[2]*c[1] + m[4]
		y := m[1]*c[0] + m[3]*c[1] + m[5]
		if i == 0 {
			box = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			continue
		}
		box.LLx = min(box.LLx, x)
		box.LLy = min(box.LLy, y)
		box.URx = max(box.URx, x)
		box.URy = max(box.URy, y)
	}
	return box
}

func renderPNG(ctx context.Context, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.CommandContext(ctx,
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gs: %w", err)
	}
	return nil
}
