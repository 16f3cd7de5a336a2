package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/puravida-ops/casitas-api/internal/httperr"
	"github.com/puravida-ops/casitas-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type EditLogsHandler struct {
	db *gorm.DB
}

func NewEditLogsHandler(db *gorm.DB) *EditLogsHandler {
	return &EditLogsHandler{db: db}
}

// List returns the edit history of one revision, newest first, with
// optional field and date filters.
func (h *EditLogsHandler) List(c *gin.Context) {
	revisionID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	field := c.Query("field")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.
		Model(&models.EditLog{}).
		Where("revision_id = ?", revisionID)

	if field != "" {
		q = q.Where("field = ?", field)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "store_read_failed", "Error al contar los registros de edición.")
		return
	}

	var logs []models.EditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "store_read_failed", "Error al listar los registros de edición.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
