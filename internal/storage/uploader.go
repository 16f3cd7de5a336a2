// Package storage uploads compressed evidence photos to an external
// object store and hands back public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrUpload = errors.New("storage: upload failed")

// Uploader sends one already-compressed image and returns its public
// URL. Failures are terminal: the enclosing save aborts, nothing
// retries.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename, baseFolder string) (string, error)
}

// Folder builds the dated destination path "<base>/<MM>/semana_<n>"
// where n is the ISO-8601 week number (weeks start on Monday).
func Folder(base string, t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("%s/%02d/semana_%d", base, int(t.Month()), week)
}
