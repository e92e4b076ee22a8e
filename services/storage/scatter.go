package storage

import (
	"context"
	"io"
	"sync"

	"cleanmaster/models"
)

// UploadInput is one image to store.
type UploadInput struct {
	Name   string
	Reader io.Reader
}

// UploadFailure reports one image that could not be stored.
type UploadFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// UploadAll stores every input concurrently and partitions the outcome.
// Uploaded photos keep the input order; a single bad image never fails the
// whole batch.
func UploadAll(ctx context.Context, svc StorageService, inputs []UploadInput) ([]models.Photo, []UploadFailure) {
	type slot struct {
		photo *models.Photo
		err   error
	}
	slots := make([]slot, len(inputs))

	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in UploadInput) {
			defer wg.Done()
			photo, err := svc.UploadImage(ctx, in.Reader, in.Name)
			slots[i] = slot{photo: photo, err: err}
		}(i, in)
	}
	wg.Wait()

	uploaded := make([]models.Photo, 0, len(inputs))
	var failed []UploadFailure
	for i, s := range slots {
		if s.err != nil {
			failed = append(failed, UploadFailure{Name: inputs[i].Name, Error: s.err.Error()})
			continue
		}
		uploaded = append(uploaded, *s.photo)
	}
	return uploaded, failed
}
