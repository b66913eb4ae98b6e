package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"society/internal/domain"
)

type upload struct {
	filename string
	data     []byte
}

// readUpload reads one multipart file field, bounded by the upload limit.
func (a *App) readUpload(w http.ResponseWriter, r *http.Request, field string) (upload, bool) {
	limit := a.maxUpload()
	r.Body = http.MaxBytesReader(w, r.Body, limit+(1<<20))
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", fmt.Sprintf("upload exceeds %d bytes", limit))
			return upload{}, false
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form: "+err.Error())
		return upload{}, false
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", field+" is required")
		return upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "read upload: "+err.Error())
		return upload{}, false
	}
	if int64(len(data)) > limit {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", fmt.Sprintf("upload exceeds %d bytes", limit))
		return upload{}, false
	}
	return upload{filename: header.Filename, data: data}, true
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
