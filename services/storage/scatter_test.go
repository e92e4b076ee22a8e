package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"cleanmaster/models"
)

type fakeStorage struct {
	failOn map[string]bool
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, name string) (*models.Photo, error) {
	if f.failOn[name] {
		return nil, fmt.Errorf("upstream rejected %s", name)
	}
	return &models.Photo{URL: "https://cdn.example/" + name, Title: name, DeleteRef: name}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, deleteRef string) error { return nil }

func inputs(names ...string) []UploadInput {
	out := make([]UploadInput, len(names))
	for i, n := range names {
		out[i] = UploadInput{Name: n, Reader: strings.NewReader("img")}
	}
	return out
}

func TestUploadAllPreservesOrder(t *testing.T) {
	uploaded, failed := UploadAll(context.Background(), &fakeStorage{}, inputs("a.jpg", "b.jpg", "c.jpg"))
	if len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}
	for i, want := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if uploaded[i].Title != want {
			t.Errorf("uploaded[%d] = %q, want %q", i, uploaded[i].Title, want)
		}
	}
}

func TestUploadAllPartialFailure(t *testing.T) {
	svc := &fakeStorage{failOn: map[string]bool{"b.jpg": true}}
	uploaded, failed := UploadAll(context.Background(), svc, inputs("a.jpg", "b.jpg", "c.jpg"))

	if len(uploaded) != 2 {
		t.Fatalf("expected 2 uploads, got %+v", uploaded)
	}
	if uploaded[0].Title != "a.jpg" || uploaded[1].Title != "c.jpg" {
		t.Errorf("survivors out of order: %+v", uploaded)
	}
	if len(failed) != 1 || failed[0].Name != "b.jpg" {
		t.Fatalf("expected one failure for b.jpg, got %+v", failed)
	}
	if !strings.Contains(failed[0].Error, "rejected") {
		t.Errorf("failure should carry the cause, got %q", failed[0].Error)
	}
}

func TestUploadAllEmptyBatch(t *testing.T) {
	uploaded, failed := UploadAll(context.Background(), &fakeStorage{}, nil)
	if len(uploaded) != 0 || len(failed) != 0 {
		t.Fatalf("empty batch should be a no-op, got %v / %v", uploaded, failed)
	}
}
