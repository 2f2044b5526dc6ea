package v1

import (
	"io"
	"net/http"

	"go-refolio-backend/internal/delivery/http/response"
	"go-refolio-backend/internal/domain"
	"go-refolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	pipelineUC domain.ResumePipelineUsecase
}

func NewResumeHandler(r *gin.RouterGroup, uploadLimiter gin.HandlerFunc, pipelineUC domain.ResumePipelineUsecase) {
	handler := &ResumeHandler{pipelineUC: pipelineUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("/parse", uploadLimiter, handler.Parse)
	}
}

// Parse godoc
// @Summary      Parse an uploaded resume
// @Description  Runs OCR on the uploaded document and extracts a structured profile fragment
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume document (JPEG/PNG/GIF/BMP/WebP/PDF, max 10MB)"
// @Success      200  {object}  response.Response{data=domain.ResumeParseResult}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      415  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Failure      504  {object}  response.Response
// @Router       /resumes/parse [post]
func (h *ResumeHandler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded; expected multipart field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	// Size validation happens in the usecase against the declared size;
	// reading is capped so an oversized body never fills memory.
	data, err := io.ReadAll(io.LimitReader(file, domain.MaxDocumentSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	doc := domain.RawDocument{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}

	result, err := h.pipelineUC.ProcessResume(c.Request.Context(), doc, nil)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume parsed", result)
}
