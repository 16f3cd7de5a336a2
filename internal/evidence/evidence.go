// Package evidence runs the compress-then-upload pipeline for one
// photo. Steps are sequential and a failure aborts the enclosing
// save; each stage keeps its own sentinel error so callers can tell
// a decode failure from a rejected upload.
package evidence

import (
	"bytes"
	"context"

	"github.com/puravida-ops/casitas-api/internal/imaging"
	"github.com/puravida-ops/casitas-api/internal/storage"
)

// File is one image selected in a form, not yet uploaded.
type File struct {
	Name string
	Data []byte
}

// Process compresses and uploads a single photo, returning its public
// URL. On error nothing is retried and no cleanup runs: an image
// uploaded by an earlier slot of the same save stays where it is.
func Process(ctx context.Context, up storage.Uploader, baseFolder string, f File) (string, error) {
	compressed, err := imaging.Compress(bytes.NewReader(f.Data))
	if err != nil {
		return "", err
	}
	return up.Upload(ctx, compressed, f.Name, baseFolder)
}
