package field

import (
	"fmt"
	"strings"
)

// MaxFileSize is the per-file upload ceiling enforced by the scoring service
const MaxFileSize = 10 * 1024 * 1024

// SupportedFormats mirrors the scoring service's accepted upload extensions
var SupportedFormats = []string{"pdf", "docx", "doc", "txt", "pptx"}

// ValidationResult is the outcome of a file policy check
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ValidateFile checks a candidate upload against the format and size policy.
// Checks run presence, then extension, then size; the first failure wins.
func ValidateFile(f *FileRef) ValidationResult {
	if f == nil {
		return ValidationResult{Reason: "No file selected"}
	}

	name := strings.ToLower(f.Name)
	ext := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = name[i+1:]
	}

	supported := false
	for _, s := range SupportedFormats {
		if ext == s {
			supported = true
			break
		}
	}
	if !supported {
		return ValidationResult{
			Reason: fmt.Sprintf("Unsupported format. Supported: %s", strings.Join(SupportedFormats, ", ")),
		}
	}

	if f.Size > MaxFileSize {
		return ValidationResult{
			Reason: fmt.Sprintf("File too large. Maximum %dMB", MaxFileSize/(1024*1024)),
		}
	}

	return ValidationResult{Valid: true}
}
