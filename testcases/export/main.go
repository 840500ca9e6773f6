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

// Command export writes the test cases and their traced contours to JSON,
// for checking against other contouring implementations.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
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
		outFile string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:          "export",
		Short:        "Write the test cases and their contours as JSON",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			contour.SetLogger(slog.New(logger))

			n, err := export(cmd.Context(), outFile)
			if err != nil {
				return err
			}
			logger.Info("wrote", "file", outFile, "cases", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "testdata/contours.json", "output file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func export(ctx context.Context, outFile string) (int, error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(ctx, category, tc)
			if err != nil {
				return 0, err
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(outFile)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return 0, err
	}
	return len(out.TestCases), f.Close()
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Data     [][]float64   `json:"data"`
	Contours []jsonContour `json:"contours"`
}

type jsonContour struct {
	Level    float64        `json:"level"`
	SubPaths [][][2]float64 `json:"subpaths"`
}

func toJSON(ctx context.Context, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Data:     tc.Data,
		Contours: make([]jsonContour, len(tc.Levels)),
	}

	f, err := contour.NewField(tc.Data)
	if err != nil {
		return jtc, err
	}
	e := contour.NewEngine(f, nil)
	defer e.Close()

	lines := make([]contour.Polylines, len(tc.Levels))
	err = e.ContoursInto(ctx, tc.Levels,
		func(i int, level float64) contour.Builder {
			return &lines[i]
		})
	if err != nil {
		return jtc, err
	}

	for i, level := range tc.Levels {
		c := jsonContour{Level: level, SubPaths: [][][2]float64{}}
		for _, l := range lines[i].Lines {
			pts := make([][2]float64, len(l))
			for j, p := range l {
				pts[j] = [2]float64{p.X, p.Y}
			}
			c.SubPaths = append(c.SubPaths, pts)
		}
		jtc.Contours[i] = c
	}
	return jtc, nil
}
