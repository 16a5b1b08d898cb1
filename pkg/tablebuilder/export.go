package tablebuilder

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/models"
	"github.com/ukaji3/tablebuilder-go/pkg/tablebuilder/render"
)

// Validate checks that a snapshot can be exported.
func Validate(snap models.Snapshot) error {
	if snap.NumRows() == 0 {
		return &ValidationError{Reason: "no rows", Err: ErrEmptyGrid}
	}
	if snap.MaxCols() == 0 {
		return &ValidationError{Reason: "no columns", Err: ErrEmptyGrid}
	}
	return nil
}

// Export renders snap in the given format and writes it to w.
// The artifact is rendered in memory first, so a render failure writes
// nothing to w.
func Export(w io.Writer, snap models.Snapshot, format Format, opts Options) error {
	if err := Validate(snap); err != nil {
		return err
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPDF:
		err = render.ToPageDocument(&buf, snap, opts.Page)
	case FormatExcel:
		err = render.ToSpreadsheet(&buf, snap, opts.Sheet)
	case FormatWord:
		err = render.ToFlowDocument(&buf, snap, opts.Flow)
	default:
		return ErrUnknownFormat
	}
	if err != nil {
		return NewExportError(format, "render", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return NewExportError(format, "write", err)
	}
	return nil
}

// ExportFile exports snap to path. A partially written file is removed.
func ExportFile(path string, snap models.Snapshot, format Format, opts Options) (err error) {
	if err := Validate(snap); err != nil {
		return err
	}
	if format.Extension() == "" {
		return ErrUnknownFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return NewExportError(format, "create", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewExportError(format, "close", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Export(f, snap, format, opts)
}

// Result is the outcome of an export started with Exporter.Start.
type Result struct {
	ID       string
	Format   Format
	Path     string
	Bytes    int64
	Duration time.Duration
	Err      error
}

// Exporter runs exports and logs their outcome. A nil Logger logs to
// slog.Default().
type Exporter struct {
	Options Options
	Logger  *slog.Logger
}

// NewExporter creates an Exporter. A nil logger uses slog.Default().
func NewExporter(opts Options, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		Options: opts,
		Logger:  logger,
	}
}

// Start snapshots g immediately and exports the snapshot to path on a new
// goroutine. Mutating g after Start returns does not affect the export.
// The returned channel receives exactly one Result and is then closed.
func (e *Exporter) Start(ctx context.Context, g *Grid, format Format, path string) <-chan Result {
	snap := g.Snapshot()
	done := make(chan Result, 1)

	go func() {
		defer close(done)
		done <- e.Run(ctx, snap, format, path)
	}()

	return done
}

// Run exports snap to path synchronously.
// ctx is only checked before the export begins.
func (e *Exporter) Run(ctx context.Context, snap models.Snapshot, format Format, path string) Result {
	res := Result{
		ID:     uuid.NewString(),
		Format: format,
		Path:   path,
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		"export_id", res.ID,
		"format", string(format),
		"rows", snap.NumRows(),
		"cols", snap.MaxCols(),
	)

	if err := ctx.Err(); err != nil {
		res.Err = err
		logger.Warn("export cancelled before start", "error", err)
		return res
	}

	if format == FormatPDF {
		if n := render.OffPageRows(snap, e.Options.Page); n > 0 {
			logger.Warn("rows placed beyond the single PDF page", "off_page_rows", n)
		}
	}

	start := time.Now()
	res.Err = ExportFile(path, snap, format, e.Options)
	res.Duration = time.Since(start)

	if res.Err != nil {
		logger.Error("export failed", "path", path, "error", res.Err)
		return res
	}
	if info, err := os.Stat(path); err == nil {
		res.Bytes = info.Size()
	}
	logger.Info("export completed", "path", path, "bytes", res.Bytes, "duration", res.Duration)
	return res
}
