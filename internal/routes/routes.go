package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/puravida-ops/casitas-api/internal/cache"
	"github.com/puravida-ops/casitas-api/internal/config"
	"github.com/puravida-ops/casitas-api/internal/handlers"
	infraRepo "github.com/puravida-ops/casitas-api/internal/infra/repository"
	"github.com/puravida-ops/casitas-api/internal/middleware"
	"github.com/puravida-ops/casitas-api/internal/models"
	"github.com/puravida-ops/casitas-api/internal/storage"
	ucNote "github.com/puravida-ops/casitas-api/internal/usecase/note"
	ucRevision "github.com/puravida-ops/casitas-api/internal/usecase/revision"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	uploader storage.Uploader,
	revCache *cache.RevisionCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	revisionRepo := infraRepo.NewRevisionGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createRevisionUC := ucRevision.NewCreateRevision(
		revisionRepo,
		uploader,
		revCache,
		cfg.RevisionesFolder,
	)

	editRevisionUC := ucRevision.NewEditRevision(
		revisionRepo,
		uploader,
		revCache,
		cfg.RevisionesFolder,
	)

	listRevisionsUC := ucRevision.NewListRevisions(
		revisionRepo,
		revCache,
	)

	getRevisionUC := ucRevision.NewGetRevision(revisionRepo)

	createNoteUC := ucNote.NewCreateNote(
		revisionRepo,
		uploader,
		cfg.NotasFolder,
	)

	listNotesUC := ucNote.NewListNotes(revisionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	revisionHandler := handlers.NewRevisionHandler(
		createRevisionUC,
		editRevisionUC,
		listRevisionsUC,
		getRevisionUC,
	)

	noteHandler := handlers.NewNoteHandler(createNoteUC, listNotesUC)
	editLogsHandler := handlers.NewEditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// REVISIONES
			// ------------------------------
			secured.GET("/revisiones", revisionHandler.List)
			secured.POST("/revisiones", revisionHandler.Create)
			secured.GET("/revisiones/:id", revisionHandler.Get)
			secured.GET("/revisiones/:id/edit-logs", editLogsHandler.List)

			// Editing prior records is supervisor-only.
			secured.PUT("/revisiones/:id",
				middleware.RequireRole(models.RoleSupervisor),
				revisionHandler.Update,
			)

			// ------------------------------
			// NOTAS
			// ------------------------------
			secured.GET("/notas", noteHandler.List)
			secured.POST("/notas", noteHandler.Create)
		}
	}
}
