package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rook-computer/favicon/internal/atomicfile"
	"github.com/rook-computer/favicon/internal/ico"
	"github.com/rook-computer/favicon/internal/logging"
)

const (
	PNGName = "favicon.png"
	ICOName = "favicon.ico"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultICOSizes are the square frame sizes embedded in favicon.ico.
var DefaultICOSizes = []int{32, 48, 64}

// Error records a filesystem failure together with the path it happened on.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Result lists the files written by Export.
type Result struct {
	PNGPath string
	ICOPath string
}

// Exporter writes a rendered canvas to Dir as favicon.png and favicon.ico.
type Exporter struct {
	Dir      string
	ICOSizes []int
	Logger   logging.Logger
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir, ICOSizes: DefaultICOSizes, Logger: logging.NoopLogger{}}
}

// EnsureDir creates the output directory and any missing parents.
func (e *Exporter) EnsureDir() error {
	if err := os.MkdirAll(e.Dir, dirPerm); err != nil {
		return &Error{Op: "create directory", Path: e.Dir, Err: err}
	}
	if err := checkWritable(e.Dir); err != nil {
		return &Error{Op: "check directory", Path: e.Dir, Err: err}
	}
	return nil
}

// Export writes the PNG then the ICO. ctx is consulted before each write
// starts; a write in progress always runs to completion.
func (e *Exporter) Export(ctx context.Context, img image.Image) (Result, error) {
	logger := logging.OrNoop(e.Logger)
	res := Result{
		PNGPath: filepath.Join(e.Dir, PNGName),
		ICOPath: filepath.Join(e.Dir, ICOName),
	}
	if err := e.EnsureDir(); err != nil {
		logger.Errorf("export", "%v", err)
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("export cancelled before %s: %w", PNGName, err)
	}
	if err := WritePNG(res.PNGPath, img); err != nil {
		logger.Errorf("export", "%v", err)
		return Result{}, err
	}
	b := img.Bounds()
	logger.Infof("export", "wrote %s (%dx%d)", res.PNGPath, b.Dx(), b.Dy())

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("export cancelled before %s: %w", ICOName, err)
	}
	sizes := e.ICOSizes
	if len(sizes) == 0 {
		sizes = DefaultICOSizes
	}
	if err := WriteICO(res.ICOPath, img, sizes); err != nil {
		logger.Errorf("export", "%v", err)
		return Result{}, err
	}
	logger.Infof("export", "wrote %s (sizes=%v)", res.ICOPath, sizes)
	return res, nil
}

// WritePNG encodes img at full resolution to path.
func WritePNG(path string, img image.Image) error {
	err := atomicfile.WriteFunc(path, filePerm, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return &Error{Op: "write png", Path: path, Err: err}
	}
	return nil
}

// WriteICO downsamples img to each size and writes them as one icon container.
func WriteICO(path string, img image.Image, sizes []int) error {
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		frames = append(frames, Downsample(img, size))
	}
	err := atomicfile.WriteFunc(path, filePerm, func(w io.Writer) error {
		return ico.Encode(w, frames)
	})
	if err != nil {
		return &Error{Op: "write ico", Path: path, Err: err}
	}
	return nil
}

// Downsample resizes img to a size x size square with a Lanczos filter.
func Downsample(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
