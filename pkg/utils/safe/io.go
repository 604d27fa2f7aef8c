package safe

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/keertidamani/ghcensus/pkg/utils/logging"
)

// Close closes the resource and logs error if any
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, fs.ErrClosed) {
			return
		}
		logging.From(ctx).Warn("Fail to close resource", slog.Any("error", err))
	}
}

// Remove removes the file and logs error if any. A missing file is not an error.
func Remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.From(ctx).Warn("Fail to remove file", slog.Any("error", err), slog.String("path", path))
	}
}
