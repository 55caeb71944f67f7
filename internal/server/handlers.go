package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvmatch/internal/field"
	"cvmatch/internal/scorer"
	"cvmatch/pkg/models"
)

const minTextLength = 10

// predictRequest is the JSON body for the text-only endpoint
type predictRequest struct {
	CVText string `json:"cv_text" form:"cv_text"`
	JDText string `json:"jd_text" form:"jd_text"`
}

// score runs the lexical scorer, records history, and writes the response
func (s *Server) score(c *gin.Context, cvText, jdText string) {
	result := scorer.Score(cvText, jdText)

	s.record(models.HistoryEntry{
		ID:          uuid.NewString(),
		CVText:      cvText,
		JDText:      jdText,
		CreatedAt:   time.Now().UTC(),
		MatchResult: result,
	})

	c.JSON(http.StatusOK, result)
}

func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cvText := strings.TrimSpace(req.CVText)
	jdText := strings.TrimSpace(req.JDText)

	if cvText == "" || jdText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both CV and JD text are required"})
		return
	}
	if len(cvText) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "CV validation failed",
			"details": "CV text must be at least 10 characters long",
		})
		return
	}
	if len(jdText) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "JD validation failed",
			"details": "Job description must be at least 10 characters long",
		})
		return
	}

	s.score(c, cvText, jdText)
}

// extractSide resolves one document side of the multipart form: uploaded
// file content wins over pasted text, matching the real service.
func extractSide(c *gin.Context, label, textKey, fileKey string) (string, bool) {
	text := strings.TrimSpace(c.PostForm(textKey))

	fh, err := c.FormFile(fileKey)
	if err != nil && text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%s: Please provide either a file or text", label),
		})
		return "", false
	}

	if fh != nil {
		content, ok := readUpload(c, label, fh)
		if !ok {
			return "", false
		}
		text = strings.TrimSpace(content)
	}

	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract text from files"})
		return "", false
	}
	return text, true
}

// readUpload applies the shared upload policy and reads the file as text.
// The stub has no real document parsers, so every format is treated as plain
// text.
func readUpload(c *gin.Context, label string, fh *multipart.FileHeader) (string, bool) {
	res := field.ValidateFile(&field.FileRef{Name: fh.Filename, Size: fh.Size})
	if !res.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "File extraction error",
			"details": fmt.Sprintf("%s: %s", label, res.Reason),
		})
		return "", false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File extraction error", "details": err.Error()})
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File extraction error", "details": err.Error()})
		return "", false
	}
	return string(data), true
}

func (s *Server) handlePredictWithFiles(c *gin.Context) {
	cvText, ok := extractSide(c, "CV", "cv_text", "cv_file")
	if !ok {
		return
	}
	jdText, ok := extractSide(c, "Job Description", "jd_text", "jd_file")
	if !ok {
		return
	}

	if len(cvText) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "CV validation failed",
			"details": "CV text must be at least 10 characters long",
		})
		return
	}
	if len(jdText) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "JD validation failed",
			"details": "Job description must be at least 10 characters long",
		})
		return
	}

	s.score(c, cvText, jdText)
}

func (s *Server) handleHistory(c *gin.Context) {
	entries := s.entries()
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleSupportedFormats(c *gin.Context) {
	c.JSON(http.StatusOK, models.FormatInfo{
		FileFormats: map[string]string{
			"pdf":  "Adobe PDF",
			"docx": "Microsoft Word (.docx)",
			"doc":  "Microsoft Word (.doc)",
			"txt":  "Plain Text",
			"pptx": "PowerPoint Presentation",
		},
		MaxFileSizeMB: field.MaxFileSize / (1024 * 1024),
		TextModes:     []string{"text_input", "file_upload", "both"},
	})
}
