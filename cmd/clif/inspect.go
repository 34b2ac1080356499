package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/clif/internal/api"
)

func inspectCmd() *cli.Command {
	var (
		encoding     string
		logLevel     string
		logFormat    string
		asJSON       bool
		showGeometry bool
		layerLimit   int
		geomLimit    int
	)

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Inspect the contents of a .cli layer file",
		ArgsUsage: "<file.cli>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "encoding",
				Aliases:     []string{"e"},
				Usage:       "binary encoding to decode with (short or long)",
				Value:       "long",
				Destination: &encoding,
			},
			&cli.BoolFlag{Name: "json", Usage: "emit machine-readable JSON", Destination: &asJSON},
			&cli.BoolFlag{Name: "geometry", Usage: "include per-layer geometry", Destination: &showGeometry},
			&cli.IntFlag{Name: "layers-limit", Usage: "limit layer listing (0 = no limit)", Value: 50, Destination: &layerLimit},
			&cli.IntFlag{Name: "points-limit", Usage: "limit points printed per loop (0 = no limit)", Value: 8, Destination: &geomLimit},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)", Value: "info", Destination: &logLevel},
			&cli.StringFlag{Name: "log-format", Usage: "log format (pretty, json)", Value: "pretty", Destination: &logFormat},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			applyCommonConfig(c, LoadConfig(), &encoding, &logLevel, &logFormat)

			path := c.Args().First()
			if path == "" {
				return cli.Exit("error: missing file argument", 1)
			}
			stat, err := os.Stat(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: stat %q: %v", path, err), 1)
			}
			if stat.IsDir() {
				return cli.Exit(fmt.Sprintf("error: %q is a directory", path), 1)
			}

			doc, err := api.LoadDocument(path, encoding)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode: %v", err), 1)
			}
			defer func() { _ = doc.Close() }()

			if asJSON {
				return printJSON(doc, showGeometry)
			}

			fmt.Printf("CLI Inspect: %s\n", path)
			fmt.Printf("File: %s (%d B)\n", filepath.Base(path), stat.Size())
			printHeader(doc)
			printLayers(doc, layerLimit)
			if showGeometry {
				printGeometry(doc, layerLimit, geomLimit)
			}
			return nil
		},
	}
}

type inspectJSON struct {
	Document api.DocumentInfo   `json:"document"`
	Layers   []api.LayerSummary `json:"layers"`
	Geometry []api.LayerDetail  `json:"geometry,omitempty"`
}

func printJSON(doc *api.Document, withGeometry bool) error {
	out := inspectJSON{
		Document: doc.Info(),
		Layers:   doc.LayerSummaries(),
	}
	if withGeometry {
		out.Geometry = make([]api.LayerDetail, 0, doc.LayerCount())
		for i := 0; i < doc.LayerCount(); i++ {
			layer, _ := doc.Layer(i)
			out.Geometry = append(out.Geometry, layer)
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printHeader(doc *api.Document) {
	info := doc.Info()
	section("Header")
	row("encoding", info.Encoding)
	row("units", fmt.Sprintf("%g mm", info.Units))
	row("version", fmt.Sprintf("%g", info.Version))
	row("aligned", fmt.Sprintf("%v", info.Aligned))
	if info.DeclaredLayers != nil {
		row("declared_layers", fmt.Sprintf("%d", *info.DeclaredLayers))
	}
	row("layers", fmt.Sprintf("%d", info.LayerCount))
}

func printLayers(doc *api.Document, limit int) {
	section("Layers")
	summaries := doc.LayerSummaries()
	if len(summaries) == 0 {
		fmt.Println("(no layers)")
		return
	}
	shown := 0
	for _, s := range summaries {
		fmt.Printf("%6d  z=%-12g loops=%-6d hatches=%d\n", s.Index, s.Height, s.Loops, s.Hatches)
		shown++
		if limit > 0 && shown >= limit {
			break
		}
	}
	if limit > 0 && shown < len(summaries) {
		fmt.Printf("... (%d shown of %d)\n", shown, len(summaries))
	}
}

func printGeometry(doc *api.Document, layerLimit, pointLimit int) {
	section("Geometry")
	count := doc.LayerCount()
	if layerLimit > 0 && count > layerLimit {
		count = layerLimit
	}
	for i := 0; i < count; i++ {
		layer, _ := doc.Layer(i)
		fmt.Printf("layer %d z=%g\n", layer.Index, layer.Height)
		for _, loop := range layer.Loops {
			fmt.Printf("  loop id=%d dir=%d points=%d %s\n",
				loop.ID, loop.Dir, len(loop.Points), formatPoints(loop.Points, pointLimit))
		}
		for _, hatch := range layer.Hatches {
			fmt.Printf("  hatch id=%d segments=%d\n", hatch.ID, len(hatch.Segments))
		}
	}
}

func formatPoints(points []api.Point, limit int) string {
	n := len(points)
	if limit > 0 && n > limit {
		n = limit
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("(%g,%g)", points[i][0], points[i][1])
	}
	s := strings.Join(parts, " ")
	if n < len(points) {
		s += " ..."
	}
	return s
}

func section(title string) {
	line := strings.Repeat("-", len(title)+8)
	fmt.Printf("\n%s\n--- %s ---\n%s\n", line, title, line)
}

func row(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-18s %s\n", label+":", value)
}
