package handlers

import (
	"mime/multipart"
	"net/http"

	"cleanmaster/services/storage"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler accepts image uploads for place photos and payment proofs.
type StorageHandler struct {
	Svc storage.StorageService
}

const maxUploadBatch = 10

// UploadImages handles POST /api/uploads. Every file in the multipart
// "images" field is stored; failures are reported per file so one bad image
// does not sink the batch.
func (h *StorageHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no images provided", "attach files under the 'images' field")
		return
	}
	if len(files) > maxUploadBatch {
		utils.JSONError(c, http.StatusBadRequest, "too many images", "at most 10 images per request")
		return
	}

	inputs := make([]storage.UploadInput, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "unreadable upload", fh.Filename)
			return
		}
		opened = append(opened, f)
		inputs = append(inputs, storage.UploadInput{Name: fh.Filename, Reader: f})
	}

	uploaded, failed := storage.UploadAll(c, h.Svc, inputs)
	status := http.StatusOK
	if len(uploaded) == 0 {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{
		"uploaded": uploaded,
		"failed":   failed,
	})
}
