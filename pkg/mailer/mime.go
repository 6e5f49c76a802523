package mailer

import (
	"mime"
	"path/filepath"
	"strings"
)

const defaultMIME = "application/octet-stream"

// Office formats are missing from many system MIME tables.
var mimeOverrides = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// GuessMIME returns the content type for a filename, falling back to
// application/octet-stream.
func GuessMIME(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return defaultMIME
	}
	if t, ok := mimeOverrides[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		// Drop parameters such as "; charset=utf-8".
		t, _, _ = strings.Cut(t, ";")
		return strings.TrimSpace(t)
	}
	return defaultMIME
}
