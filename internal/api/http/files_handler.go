package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"gkbc-backend/internal/storage"
)

// FilesHandler streams locally stored objects back out over HTTP. It backs
// the public URLs produced by local storage; hosted buckets serve their own.
type FilesHandler struct {
	objects storage.ObjectStorage
}

func NewFilesHandler(objects storage.ObjectStorage) *FilesHandler {
	return &FilesHandler{objects: objects}
}

func (h *FilesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucket, key := vars["bucket"], vars["key"]

	file, err := h.objects.Open(r.Context(), bucket, key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
