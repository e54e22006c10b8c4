package s3transfer

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// flusher is implemented by buffered writers that can be flushed per line.
type flusher interface {
	Flush() error
}

// writeLine writes one report line and flushes it immediately, so very large
// listings stream instead of accumulating until completion.
func writeLine(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// formatLastModified renders a listing timestamp in the local time zone,
// left-justified to a 19-character field.
func formatLastModified(t time.Time) string {
	return fmt.Sprintf("%-19s", t.Local().Format("2006-01-02 15:04:05"))
}

// formatSize renders the size column right-justified to 10 characters.
func formatSize(size int64, human bool) string {
	if human {
		return fmt.Sprintf("%10s", humanize.IBytes(uint64(size)))
	}
	return fmt.Sprintf("%10s", strconv.FormatInt(size, 10))
}
