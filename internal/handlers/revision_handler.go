package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/puravida-ops/casitas-api/internal/evidence"
	"github.com/puravida-ops/casitas-api/internal/httperr"
	"github.com/puravida-ops/casitas-api/internal/httpresp"
	"github.com/puravida-ops/casitas-api/internal/logger"
	"github.com/puravida-ops/casitas-api/internal/middleware"
	ucRevision "github.com/puravida-ops/casitas-api/internal/usecase/revision"
)

type RevisionHandler struct {
	createUC *ucRevision.CreateRevision
	editUC   *ucRevision.EditRevision
	listUC   *ucRevision.ListRevisions
	getUC    *ucRevision.GetRevision
}

func NewRevisionHandler(
	createUC *ucRevision.CreateRevision,
	editUC *ucRevision.EditRevision,
	listUC *ucRevision.ListRevisions,
	getUC *ucRevision.GetRevision,
) *RevisionHandler {
	return &RevisionHandler{
		createUC: createUC,
		editUC:   editUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

var evidenceFields = [3]string{"evidencia_01", "evidencia_02", "evidencia_03"}

// Create accepts the new-revision multipart form: checklist values as
// text fields, photos as files.
func (h *RevisionHandler) Create(c *gin.Context) {
	rev := revisionFromForm(c)
	rev.QuienRevisa = c.MustGet(middleware.ContextUserName).(string)

	var files [3]*evidence.File
	for i, field := range evidenceFields {
		f, err := formEvidence(c, field)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "No se pudo leer el archivo adjunto.")
			return
		}
		files[i] = f
	}

	in := ucRevision.CreateRevisionInput{
		Revision:                   rev,
		AccesoriosSecadoraFaltante: c.PostForm("accesorios_secadora_faltante"),
		Faltantes:                  c.PostForm("faltantes"),
		Evidencias:                 files,
	}

	created, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeSaveError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *RevisionHandler) List(c *gin.Context) {
	filter := ucRevision.ListFilter{
		CajaFuerte: c.Query("caja_fuerte"),
		Query:      c.Query("q"),
	}

	revs, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "store_read_failed", "Error al cargar las revisiones.")
		return
	}

	httpresp.List(c, revs)
}

func (h *RevisionHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// Update runs the edit-diff recorder. Route is supervisor-only.
func (h *RevisionHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	fields := revisionFromForm(c)

	var files [3]*evidence.File
	for i, field := range evidenceFields {
		f, err := formEvidence(c, field)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "No se pudo leer el archivo adjunto.")
			return
		}
		files[i] = f
	}

	in := ucRevision.EditRevisionInput{
		ID:         id,
		Editor:     c.MustGet(middleware.ContextUserName).(string),
		Fields:     fields,
		Evidencias: files,
	}

	updated, logs, err := h.editUC.Execute(c.Request.Context(), in)
	if err != nil {
		// May leave the record updated with an incomplete audit
		// trail; the log line is the only place that records which
		// revision was affected.
		logger.FromGin(c).Error("revision edit failed",
			"revision_id", id,
			"changed_fields", len(logs),
			"error", err,
		)
		writeSaveError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"revision":       updated,
		"changed_fields": len(logs),
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
