package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentFileHandler handles document attachment uploads and downloads.
type documentFileHandler struct {
	fileService portssvc.DocumentFileSvcFacade
	userService portssvc.UserSvcFacade
}

// newDocumentFileHandler creates a new documentFileHandler.
func newDocumentFileHandler(fs portssvc.DocumentFileSvcFacade, us portssvc.UserSvcFacade) *documentFileHandler {
	return &documentFileHandler{
		fileService: fs,
		userService: us,
	}
}

// registerDocumentFileRoutes registers attachment routes.
func registerDocumentFileRoutes(rg *gin.RouterGroup, fs portssvc.DocumentFileSvcFacade, us portssvc.UserSvcFacade) {
	h := newDocumentFileHandler(fs, us)

	rg.POST("/documents/:documentID/files", h.uploadDocumentFile)
	rg.GET("/documents/:documentID/files", h.listDocumentFiles)
	rg.GET("/files/:fileID", h.downloadDocumentFile)
	rg.DELETE("/files/:fileID", h.deleteDocumentFile)
}

// uploadDocumentFile godoc
// @Summary Upload a document attachment
// @Description Streams a multipart file to object storage and records its metadata against the document.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param documentID path int true "Document ID"
// @Param file formData file true "Attachment content"
// @Success 201 {object} dto.DocumentFileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /documents/{documentID}/files [post]
func (h *documentFileHandler) uploadDocumentFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file in multipart form"})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := h.fileService.UploadDocumentFile(c.Request.Context(), documentID, fileHeader.Filename, contentType, fileHeader.Size, src, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upload file")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentFileResponse(file))
}

// listDocumentFiles godoc
// @Summary List a document's attachments
// @Description Retrieves metadata for all attachments on a document.
// @Tags files
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {array} dto.DocumentFileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/files [get]
func (h *documentFileHandler) listDocumentFiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	files, err := h.fileService.ListDocumentFiles(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list files")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentFilesResponse(files))
}

// downloadDocumentFile godoc
// @Summary Download a document attachment
// @Description Streams the attachment content from object storage.
// @Tags files
// @Produce octet-stream
// @Param fileID path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /files/{fileID} [get]
func (h *documentFileHandler) downloadDocumentFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileID, ok := parseIDParam(c, "fileID")
	if !ok {
		return
	}

	meta, content, err := h.fileService.GetDocumentFile(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve file")
		return
	}
	defer content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+meta.FileName+`"`)
	c.DataFromReader(http.StatusOK, meta.SizeBytes, meta.ContentType, content, nil)
}

// deleteDocumentFile godoc
// @Summary Delete a document attachment
// @Description Removes the attachment metadata and its stored content.
// @Tags files
// @Produce json
// @Param fileID path int true "File ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /files/{fileID} [delete]
func (h *documentFileHandler) deleteDocumentFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileID, ok := parseIDParam(c, "fileID")
	if !ok {
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	if err := h.fileService.DeleteDocumentFile(c.Request.Context(), fileID, actor); err != nil {
		respondServiceError(c, logger, err, "Failed to delete file")
		return
	}
	c.Status(http.StatusNoContent)
}
