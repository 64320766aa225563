// Copyright (c) 2026 Vitrine. All rights reserved.
// Author: dev@vitrinehq.com

package upload_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinehq/vitrine/internal/content/upload"
	"github.com/vitrinehq/vitrine/internal/platform/apperr"
	"github.com/vitrinehq/vitrine/internal/platform/constants"
)

const blobPrefix = "https://assets.vitrinehq.com/vitrine-media/"

// fakeBlobs stores uploads in memory; concurrent-safe because UploadAll
// writes from multiple goroutines.
type fakeBlobs struct {
	mu      sync.Mutex
	objects map[string]string
	failFor string // file name fragment that triggers a Put failure
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string]string{}}
}

func (f *fakeBlobs) Put(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.failFor != "" && strings.Contains(key, f.failFor) {
		return "", errors.New("bucket unavailable")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = contentType + ":" + string(data)
	return blobPrefix + key, nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobs) Owns(rawURL string) bool {
	return strings.HasPrefix(rawURL, blobPrefix)
}

func (f *fakeBlobs) Key(rawURL string) (string, bool) {
	if !f.Owns(rawURL) {
		return "", false
	}
	return strings.TrimPrefix(rawURL, blobPrefix), true
}

func newTestService(blobs *fakeBlobs) *upload.Service {
	return upload.NewService(blobs, slog.Default())
}

func TestService_Upload(t *testing.T) {
	blobs := newFakeBlobs()
	service := newTestService(blobs)

	url, err := service.Upload(context.Background(), upload.File{
		Name:        "Héro Visual (final).JPG",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)

	// Key carries the namespace prefix and a slug of the original name.
	assert.Contains(t, url, blobPrefix+constants.UploadFolderPrefix+"/")
	assert.Contains(t, url, "hero-visual-final.jpg")
	assert.Len(t, blobs.objects, 1)
}

func TestService_Upload_RejectsContentType(t *testing.T) {
	blobs := newFakeBlobs()
	service := newTestService(blobs)

	_, err := service.Upload(context.Background(), upload.File{
		Name:        "malware.exe",
		ContentType: "application/octet-stream",
		Size:        10,
		Body:        strings.NewReader("x"),
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", appErr.Code)

	// Nothing reaches the bucket.
	assert.Empty(t, blobs.objects)
}

func TestService_Upload_RejectsOversize(t *testing.T) {
	blobs := newFakeBlobs()
	service := newTestService(blobs)

	_, err := service.Upload(context.Background(), upload.File{
		Name:        "huge.mp4",
		ContentType: "video/mp4",
		Size:        constants.MaxUploadSize + 1,
		Body:        strings.NewReader("x"),
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", appErr.Code)
	assert.Empty(t, blobs.objects)
}

func TestService_UploadAll(t *testing.T) {
	blobs := newFakeBlobs()
	service := newTestService(blobs)

	urls, err := service.UploadAll(context.Background(), []upload.File{
		{Name: "a.png", ContentType: "image/png", Size: 3, Body: strings.NewReader("aaa")},
		{Name: "b.webp", ContentType: "image/webp", Size: 3, Body: strings.NewReader("bbb")},
	})
	require.NoError(t, err)

	require.Len(t, urls, 2)
	// URL order matches input order regardless of completion order.
	assert.Contains(t, urls[0], "a.png")
	assert.Contains(t, urls[1], "b.webp")
}

func TestService_UploadAll_OneFailureFailsBatch(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.failFor = "broken"
	service := newTestService(blobs)

	urls, err := service.UploadAll(context.Background(), []upload.File{
		{Name: "ok.png", ContentType: "image/png", Size: 2, Body: strings.NewReader("ok")},
		{Name: "broken.png", ContentType: "image/png", Size: 2, Body: strings.NewReader("no")},
	})

	require.Error(t, err)
	assert.Nil(t, urls)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_ERROR", appErr.Code)
}

func TestService_UploadAll_ValidatesBeforeAnyTransfer(t *testing.T) {
	blobs := newFakeBlobs()
	service := newTestService(blobs)

	_, err := service.UploadAll(context.Background(), []upload.File{
		{Name: "ok.png", ContentType: "image/png", Size: 2, Body: strings.NewReader("ok")},
		{Name: "nope.exe", ContentType: "application/octet-stream", Size: 2, Body: strings.NewReader("xx")},
	})

	require.Error(t, err)
	// The whole batch is rejected up front; even the valid file is not sent.
	assert.Empty(t, blobs.objects)
}
