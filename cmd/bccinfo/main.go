// Command bccinfo inspects BCC curve collection files.
//
// It prints the file header, optional per-curve statistics, and the size
// of the line-strip geometry the file expands to, in plain text or JSON.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/gogpu/bcc"
)

func main() {
	app := infoCmd()
	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func infoCmd() *cli.Command {
	var (
		asJSON       bool
		showCurves   bool
		showGeometry bool
		verbose      bool
	)

	return &cli.Command{
		Name:      "bccinfo",
		Usage:     "Inspect a BCC binary curve collection file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit JSON instead of text", Destination: &asJSON},
			&cli.BoolFlag{Name: "curves", Aliases: []string{"c"}, Usage: "list per-curve statistics", Destination: &showCurves},
			&cli.BoolFlag{Name: "geometry", Aliases: []string{"g"}, Usage: "show line-strip geometry sizes", Destination: &showGeometry},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging", Destination: &verbose},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("missing FILE argument", 2)
			}
			if verbose {
				bcc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			c, err := bcc.ParseContext(ctx, f)
			if err != nil {
				return err
			}

			rep, err := buildReport(c, showCurves, showGeometry)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(rep)
			return nil
		},
	}
}

type report struct {
	FileInformation string       `json:"file_information"`
	UpDirection     string       `json:"up_direction"`
	Dimensions      int          `json:"dimensions"`
	NumCurves       int          `json:"num_curves"`
	NumPoints       int          `json:"num_control_points"`
	LoopingCurves   int          `json:"looping_curves"`
	Curves          []curveStats `json:"curves,omitempty"`
	Geometry        *geomStats   `json:"geometry,omitempty"`
}

type curveStats struct {
	Index   int  `json:"index"`
	Points  int  `json:"points"`
	Looping bool `json:"looping"`
}

type geomStats struct {
	Vertices    int `json:"vertices"`
	Indices     int `json:"indices"`
	VertexBytes int `json:"vertex_bytes"`
	IndexBytes  int `json:"index_bytes"`
}

func buildReport(c *bcc.Collection, withCurves, withGeometry bool) (*report, error) {
	hdr := c.Header()
	rep := &report{
		FileInformation: hdr.FileInformation(),
		UpDirection:     hdr.UpDirection().String(),
		Dimensions:      hdr.Dimensions(),
		NumCurves:       c.NumCurves(),
		NumPoints:       hdr.NumControlPoints(),
	}
	for i := 0; i < c.NumCurves(); i++ {
		if c.Looping(i) {
			rep.LoopingCurves++
		}
		if withCurves {
			rep.Curves = append(rep.Curves, curveStats{
				Index:   i,
				Points:  c.NumCurvePoints(i),
				Looping: c.Looping(i),
			})
		}
	}
	if withGeometry {
		g, err := bcc.BuildGeometry(c)
		if err != nil {
			return nil, err
		}
		rep.Geometry = &geomStats{
			Vertices:    len(g.Positions),
			Indices:     len(g.Indices),
			VertexBytes: len(g.Positions) * 3 * 4,
			IndexBytes:  len(g.Indices) * 4,
		}
	}
	return rep, nil
}

func printReport(rep *report) {
	fmt.Printf("File information: %s\n", rep.FileInformation)
	fmt.Printf("Up direction    : %s\n", rep.UpDirection)
	fmt.Printf("Dimensions      : %d\n", rep.Dimensions)
	fmt.Printf("Curves          : %d (%d looping)\n", rep.NumCurves, rep.LoopingCurves)
	fmt.Printf("Control points  : %d\n", rep.NumPoints)

	for _, cs := range rep.Curves {
		shape := "open"
		if cs.Looping {
			shape = "looping"
		}
		fmt.Printf("  curve %-6d %8d points  %s\n", cs.Index, cs.Points, shape)
	}
	if rep.Geometry != nil {
		fmt.Printf("Geometry        : %d vertices (%d bytes), %d indices (%d bytes), line-strip\n",
			rep.Geometry.Vertices, rep.Geometry.VertexBytes,
			rep.Geometry.Indices, rep.Geometry.IndexBytes)
	}
}
