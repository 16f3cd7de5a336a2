package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/httperr"
	"github.com/puravida-ops/casitas-api/internal/imaging"
	"github.com/puravida-ops/casitas-api/internal/models"
	"github.com/puravida-ops/casitas-api/internal/storage"
	"github.com/puravida-ops/casitas-api/internal/validators"
)

// formEvidence reads one optional file field from a multipart form.
// A missing file is not an error.
func formEvidence(c *gin.Context, field string) (*evidence.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &evidence.File{Name: fh.Filename, Data: data}, nil
}

// revisionFromForm fills the auditable fields from multipart values.
func revisionFromForm(c *gin.Context) models.Revision {
	var rev models.Revision
	for _, field := range models.AuditableFields {
		rev.SetFieldValue(field, c.PostForm(field))
	}
	return rev
}

// writeReadError renders load failures: not-found versus a store
// error behind the full-page error state.
func writeReadError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "revision_not_found", "Revisión no encontrada.")
		return
	}
	httperr.Internal(c, "store_read_failed", "Error al cargar los datos.")
}

// writeSaveError maps a save failure onto the error taxonomy. All of
// these are terminal for the current request; the client keeps its
// form data and may resubmit.
func writeSaveError(c *gin.Context, err error) {
	var ve *validators.ValidationError
	switch {
	case errors.As(err, &ve):
		httperr.BadRequest(c, "validation_failed", ve.Message)
	case errors.Is(err, imaging.ErrDecode), errors.Is(err, imaging.ErrEncode):
		httperr.BadRequest(c, "image_processing_failed", "No se pudo procesar la imagen.")
	case errors.Is(err, storage.ErrUpload):
		httperr.BadGateway(c, "upload_failed", "Error al subir la imagen.")
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "revision_not_found", "Revisión no encontrada.")
	default:
		httperr.Internal(c, "store_write_failed", "Error al guardar los datos.")
	}
}
