// Command genfavicon renders the site favicon and writes public/favicon.png
// and public/favicon.ico at the repository root.
// Usage: go run ./genfavicon
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rook-computer/favicon/internal/export"
	"github.com/rook-computer/favicon/internal/logging"
	"github.com/rook-computer/favicon/internal/render"
)

func main() {
	logger := logging.NewConsoleLogger(os.Stderr)

	res, err := run(context.Background(), outputDir(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "favicon generation failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Saved favicon assets to %s and %s\n", res.PNGPath, res.ICOPath)
}

func run(ctx context.Context, dir string, logger logging.Logger) (export.Result, error) {
	renderer := render.NewIconRenderer(render.DefaultConfig())
	renderer.Logger = logger
	canvas, err := renderer.Render()
	if err != nil {
		return export.Result{}, err
	}

	exporter := export.NewExporter(dir)
	exporter.Logger = logger
	return exporter.Export(ctx, canvas)
}

// outputDir is the public directory one level above this command's source
// directory. Without caller information it falls back to ./public.
func outputDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok || file == "" {
		return "public"
	}
	return filepath.Join(filepath.Dir(file), "..", "public")
}
