package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"cvmatch/internal/field"
	"cvmatch/internal/score"
	"cvmatch/pkg/models"
)

// preflight checks both fields before any network traffic. CV is checked
// before JD and the first violation wins.
func preflight(cv, jd *field.State) string {
	if cv.Mode == field.ModeText && strings.TrimSpace(cv.Text) == "" {
		return "Please enter CV text"
	}
	if cv.Mode == field.ModeFile && cv.File == nil {
		return "Please select CV file"
	}
	if jd.Mode == field.ModeText && strings.TrimSpace(jd.Text) == "" {
		return "Please enter job description text"
	}
	if jd.Mode == field.ModeFile && jd.File == nil {
		return "Please select job description file"
	}
	return ""
}

// writeSide adds exactly one part for a field: its text or its file,
// depending on the active mode. Never both.
func writeSide(w *multipart.Writer, textName, fileName string, s *field.State) error {
	if s.Mode == field.ModeText {
		return w.WriteField(textName, s.Text)
	}
	part, err := w.CreateFormFile(fileName, s.File.Name)
	if err != nil {
		return err
	}
	rc, err := s.File.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.Copy(part, rc)
	return err
}

// SubmitMatch sends one CV/JD pair to the scoring endpoint and returns the
// normalized result. It performs no retries; preventing overlapping
// submissions is the caller's job (loading flag in the UI).
func (c *Client) SubmitMatch(ctx context.Context, cv, jd *field.State) (*models.MatchResult, error) {
	if msg := preflight(cv, jd); msg != "" {
		return nil, errors.New(msg)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeSide(w, "cv_text", "cv_file", cv); err != nil {
		return nil, err
	}
	if err := writeSide(w, "jd_text", "jd_file", jd); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict-with-files/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result models.MatchResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	result = score.Normalize(result)
	return &result, nil
}

// PredictText sends a text-only pair to the plain predict endpoint. Both
// inputs go through the same blank checks as SubmitMatch.
func (c *Client) PredictText(ctx context.Context, cvText, jdText string) (*models.MatchResult, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, errors.New("Please enter CV text")
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, errors.New("Please enter job description text")
	}

	payload := map[string]string{
		"cv_text": cvText,
		"jd_text": jdText,
	}
	var result models.MatchResult
	if err := c.postJSON(ctx, "/api/predict/", payload, &result); err != nil {
		return nil, err
	}
	result = score.Normalize(result)
	return &result, nil
}
