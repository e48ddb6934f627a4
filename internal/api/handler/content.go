package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases/content"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
)

const maxUploadMemory = 32 << 20

// UploadMedia repassa o multipart do painel (section_id, title, type e file) ao backend
func UploadMedia(service content.ContentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			logger.WithError(err).Warn("Multipart inválido no envio de mídia")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envio de arquivo inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		sectionID, _ := strconv.ParseInt(r.FormValue("section_id"), 10, 64)
		upload := &domain.MediaUpload{
			SectionID: sectionID,
			Title:     r.FormValue("title"),
			Type:      r.FormValue("type"),
		}

		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			upload.File = file
			upload.FileName = header.Filename
		}

		result, err := service.UploadMedia(r.Context(), upload)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	})
}
