package snipeit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// ListFiles lists the files attached to an asset.
func (s *AssetService) ListFiles(ctx context.Context, id int) (*FileList, error) {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "files")
	var list FileList
	if err := s.client.getJSON(ctx, "assets.list_files", u, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UploadFiles attaches local files to an asset via multipart upload.
func (s *AssetService) UploadFiles(ctx context.Context, id int, paths []string, notes string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no files to upload", ErrValidation)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: opening %s: %w", ErrValidation, path, err)
		}
		part, err := w.CreateFormFile("file[]", filepath.Base(path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %w", ErrTransport, path, err)
		}
	}
	if notes != "" {
		if err := w.WriteField("notes", notes); err != nil {
			return fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	u := s.client.endpoint("hardware", strconv.Itoa(id), "files")
	data, err := s.client.do(ctx, "assets.upload_files", http.MethodPost, u, w.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	return s.client.unwrap(data, nil)
}

// DownloadFile fetches the raw contents of an attached file.
func (s *AssetService) DownloadFile(ctx context.Context, id, fileID int) ([]byte, error) {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "files", strconv.Itoa(fileID))
	return s.client.do(ctx, "assets.download_file", http.MethodGet, u, "", nil)
}

// DeleteFile removes an attached file.
func (s *AssetService) DeleteFile(ctx context.Context, id, fileID int) error {
	u := s.client.endpoint("hardware", strconv.Itoa(id), "files", strconv.Itoa(fileID))
	return s.client.sendJSON(ctx, "assets.delete_file", http.MethodDelete, u, nil, nil)
}
