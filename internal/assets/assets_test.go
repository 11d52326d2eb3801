package assets

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var pdfBytes = []byte("%PDF-1.4\n% test resume\n")

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, pdfBytes, 0o644))
	return path
}

func TestCopyResume(t *testing.T) {
	t.Parallel()

	src := writeResume(t)
	dir := filepath.Join(t.TempDir(), "nested", "downloads")

	dst, err := CopyResume(context.Background(), src, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ResumeName), dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, data)
}

func TestCopyResumeErrors(t *testing.T) {
	t.Parallel()

	_, err := CopyResume(context.Background(), "", t.TempDir())
	require.ErrorIs(t, err, ErrNoResume)
	assert.True(t, IsMissing(err))

	_, err = CopyResume(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), t.TempDir())
	var se *apperrors.StorageError
	require.ErrorAs(t, err, &se)
	assert.True(t, IsMissing(err))

	_, err = CopyResume(context.Background(), t.TempDir(), t.TempDir())
	require.Error(t, err, "directories are not resumes")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = CopyResume(ctx, writeResume(t), t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandlerServesOnlyResume(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(NewHandler(writeResume(t), nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + ResumePath)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pdfBytes, body)

	for _, path := range []string{"/", "/api/contact", "/cv.pdf"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestHandlerRejectsWrites(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, ResumePath, nil)
	NewHandler(writeResume(t), nil).ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, NewHandler(writeResume(t), nil), nil)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + ResumePath)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
