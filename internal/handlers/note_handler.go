package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puravida-ops/casitas-api/internal/httperr"
	"github.com/puravida-ops/casitas-api/internal/httpresp"
	ucNote "github.com/puravida-ops/casitas-api/internal/usecase/note"
)

type NoteHandler struct {
	createUC *ucNote.CreateNote
	listUC   *ucNote.ListNotes
}

func NewNoteHandler(
	createUC *ucNote.CreateNote,
	listUC *ucNote.ListNotes,
) *NoteHandler {
	return &NoteHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

func (h *NoteHandler) Create(c *gin.Context) {
	f, err := formEvidence(c, "evidencia")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "No se pudo leer el archivo adjunto.")
		return
	}

	in := ucNote.CreateNoteInput{
		Casita:    c.PostForm("casita"),
		Usuario:   c.PostForm("usuario"),
		Nota:      c.PostForm("nota"),
		Evidencia: f,
	}

	// The form sends the day; time-of-day comes from the server.
	if raw := c.PostForm("fecha"); raw != "" {
		fecha, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Fecha inválida.")
			return
		}
		in.Fecha = fecha
	}

	created, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeSaveError(c, err)
		return
	}

	httpresp.Created(c, created)
}

func (h *NoteHandler) List(c *gin.Context) {
	casita := c.Query("casita")
	if casita == "" {
		httperr.BadRequest(c, "invalid_request", "El parámetro casita es obligatorio.")
		return
	}

	notes, err := h.listUC.Execute(c.Request.Context(), casita)
	if err != nil {
		httperr.Internal(c, "store_read_failed", "Error al cargar las notas.")
		return
	}

	httpresp.List(c, notes)
}
