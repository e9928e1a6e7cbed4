package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/internal/dto"
	"github.com/skillforge-dev/skillforge/internal/middleware"
	"github.com/skillforge-dev/skillforge/internal/service"
)

// maxResumeUploadBytes bounds resume uploads at 10 MB.
const maxResumeUploadBytes = 10 << 20

type ResumeController struct {
	resumeSvc service.ResumeService
}

func NewResumeController(resumeSvc service.ResumeService) *ResumeController {
	return &ResumeController{resumeSvc: resumeSvc}
}

// UploadResume godoc
// @Summary Upload a resume file and extract its text
// @Description Accepts PDF, DOCX or plain text and returns the extracted text.
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} dto.ExtractTextResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported format"
// @Security BearerAuth
// @Router /resume/upload [post]
func (ctrl *ResumeController) UploadResume(c *gin.Context) {
	text, ok := ctrl.extractUploadedText(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ExtractTextResponse{
		Text:    text,
		Message: "Resume uploaded and text extracted successfully",
	})
}

// ParseResume godoc
// @Summary Parse a resume into structured data
// @Description Accepts either a JSON body with raw text or a multipart file upload; parses skills, experience, education and suggestions, and stores section embeddings for interview grounding.
// @Tags resume
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body dto.ParseResumeRequest false "Raw resume text"
// @Success 200 {object} dto.ParsedResumeResponse
// @Failure 400 {object} dto.ErrorResponse "No text provided or unsupported format"
// @Security BearerAuth
// @Router /resume/parse [post]
func (ctrl *ResumeController) ParseResume(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var text string
	if _, err := c.FormFile("resume"); err == nil {
		extracted, ok := ctrl.extractUploadedText(c)
		if !ok {
			return
		}
		text = extracted
	} else {
		var req dto.ParseResumeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No text provided"})
			return
		}
		text = req.Text
	}

	resp, err := ctrl.resumeSvc.ParseAndStore(c.Request.Context(), userID, text)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to parse resume")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error parsing resume"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// extractUploadedText reads the multipart "resume" file and extracts its
// text. On failure it writes the error response and returns ok=false.
func (ctrl *ResumeController) extractUploadedText(c *gin.Context) (string, bool) {
	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file uploaded"})
		return "", false
	}
	if header.Size > maxResumeUploadBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "File too large"})
		return "", false
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to open uploaded resume")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error processing file"})
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read uploaded resume")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error processing file"})
		return "", false
	}

	text, err := ctrl.resumeSvc.ExtractText(header.Filename, data)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid file format. Only PDF and Docx allowed."})
			return "", false
		}
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to extract resume text")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error processing file"})
		return "", false
	}
	return text, true
}
