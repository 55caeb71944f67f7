package field

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Mode selects which capture a field is using: pasted text or an uploaded file
type Mode int

const (
	ModeText Mode = iota
	ModeFile
)

// FileRef is a handle on a candidate upload. Content comes from Path unless
// Data is set (in-memory candidates, mostly tests).
type FileRef struct {
	Name string
	Size int64
	Path string
	Data []byte
}

// NewFileRef builds a FileRef for a local file
func NewFileRef(path string) (*FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &FileRef{
		Name: filepath.Base(path),
		Size: info.Size(),
		Path: path,
	}, nil
}

// Open returns the file content for upload
func (f *FileRef) Open() (io.ReadCloser, error) {
	if f.Data != nil {
		return io.NopCloser(bytes.NewReader(f.Data)), nil
	}
	return os.Open(f.Path)
}

// State is the per-field input state machine. One instance exists per
// document side (CV, JD). Both the text and file captures are cached, so
// toggling the mode back and forth never loses what the user entered.
type State struct {
	Label      string
	Mode       Mode
	Text       string
	File       *FileRef
	DragActive bool
	Err        string
}

// NewState creates a field in text mode
func NewState(label string) *State {
	return &State{Label: label, Mode: ModeText}
}

// SetMode switches the capture mode without discarding the other mode's value
func (s *State) SetMode(m Mode) {
	s.Mode = m
}

// SetText overwrites the text capture; ignored outside text mode
func (s *State) SetText(v string) {
	if s.Mode != ModeText {
		return
	}
	s.Text = v
}

// SelectFile validates a candidate and, on success, stores it and clears the
// field error. A failed candidate leaves the current file untouched.
func (s *State) SelectFile(f *FileRef) ValidationResult {
	res := ValidateFile(f)
	if res.Valid {
		s.File = f
		s.Err = ""
	} else {
		s.Err = s.Label + ": " + res.Reason
	}
	return res
}

// DragEnter marks the drop target as hovered
func (s *State) DragEnter() {
	s.DragActive = true
}

// DragLeave clears the hover flag
func (s *State) DragLeave() {
	s.DragActive = false
}

// Drop takes the first dropped candidate through the same validation as
// SelectFile. A valid drop always switches the field into file mode; an
// invalid one leaves both mode and file untouched. A drop with no files only
// clears the hover flag.
func (s *State) Drop(candidates ...*FileRef) ValidationResult {
	s.DragActive = false
	if len(candidates) == 0 || candidates[0] == nil {
		return ValidationResult{Reason: "No file selected"}
	}
	res := ValidateFile(candidates[0])
	if res.Valid {
		s.File = candidates[0]
		s.Mode = ModeFile
		s.Err = ""
	} else {
		s.Err = s.Label + ": " + res.Reason
	}
	return res
}
