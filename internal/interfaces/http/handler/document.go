package handler

import (
	"strings"

	archiveapp "github.com/carbyfah/backend/internal/application/archive"
	"github.com/carbyfah/backend/internal/domain/archive"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles digital-file endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *archiveapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *archiveapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// RegisterRoutes registers the digital-file routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documentos := rg.Group("/archivo/documentos")
	{
		documentos.GET("/:id", h.GetByID)
		documentos.GET("/:id/descargar", h.GetDownloadLink)
		documentos.GET("/por-perfil/:perfilId", h.ListByProfile)
		documentos.POST("", middleware.RequireWrite(), h.Upload)
		documentos.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Upload stores a file in object storage and records its metadata.
// Multipart form: archivo (file), perfil_id, tipo, descripcion.
func (h *DocumentHandler) Upload(c *gin.Context) {
	profileID, err := uuid.Parse(c.PostForm("perfil_id"))
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	kind := archive.DocumentKind(strings.ToUpper(strings.TrimSpace(c.PostForm("tipo"))))

	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		h.BadRequest(c, "Missing file in 'archivo' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	document, err := h.documentService.Upload(c.Request.Context(), archiveapp.UploadDocumentRequest{
		ProfileID:   profileID,
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Description: c.PostForm("descripcion"),
		Content:     file,
		CreatedBy:   actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, document)
}

// GetByID retrieves a document's metadata
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	document, err := h.documentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, document)
}

// GetDownloadLink returns a time-limited URL for the document bytes
func (h *DocumentHandler) GetDownloadLink(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	link, err := h.documentService.GetDownloadLink(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// ListByProfile retrieves the documents of a profile, optionally
// filtered with the tipo query parameter.
func (h *DocumentHandler) ListByProfile(c *gin.Context) {
	profileID, err := pathUUID(c, "perfilId")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	kind := archive.DocumentKind(strings.ToUpper(strings.TrimSpace(c.Query("tipo"))))

	documents, err := h.documentService.ListByProfile(c.Request.Context(), profileID, kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, documents)
}

// Delete removes the document record and its stored object
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
