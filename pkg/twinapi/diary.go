package twinapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListDiaryEntries returns the twin's diary.
func (c *Client) ListDiaryEntries(ctx context.Context, twinID string) (entries []twin.DiaryEntry, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/diary", twinID))
	if err != nil {
		if IsNotFound(err) {
			entries = []twin.DiaryEntry{}
			err = nil
			return entries, err
		}
		err = errors.Wrap(err, "failed to list diary entries")
		return entries, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		entries = []twin.DiaryEntry{}
		err = nil
		return entries, err
	}

	if payload.Kind == envelope.KindObject {
		entries = []twin.DiaryEntry{twin.DecodeDiaryEntry(payload.Raw)}
		return entries, err
	}

	entries = twin.DecodeDiaryEntries(payload.Raw)
	return entries, err
}

// CreateDiaryEntry creates a diary entry with defaults applied.
func (c *Client) CreateDiaryEntry(ctx context.Context, twinID string, entry twin.DiaryEntry) (created twin.DiaryEntry, err error) {
	entry.ApplyDefaults()
	err = entry.Validate()
	if err != nil {
		return created, err
	}

	var payload []byte
	payload, err = json.Marshal(entry)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal diary entry")
		return created, err
	}

	var body []byte
	body, err = c.postJSON(ctx, fmt.Sprintf("/twins/%s/diary", twinID), payload)
	if err != nil {
		err = errors.Wrap(err, "failed to create diary entry")
		return created, err
	}

	created = entry
	if normalized, normErr := envelope.Normalize(body); normErr == nil && normalized.Kind == envelope.KindObject {
		created = twin.DecodeDiaryEntry(normalized.Raw)
	}
	return created, err
}

// DeleteDiaryEntry removes a diary entry by id.
func (c *Client) DeleteDiaryEntry(ctx context.Context, twinID, entryID string) (err error) {
	err = c.delete(ctx, fmt.Sprintf("/twins/%s/diary/%s", twinID, entryID))
	if err != nil {
		err = errors.Wrapf(err, "failed to delete diary entry %s", entryID)
		return err
	}
	return err
}

// UploadDiaryPhoto attaches a photo file to a diary entry via a
// multipart POST.
func (c *Client) UploadDiaryPhoto(ctx context.Context, twinID, entryID, photoPath string) (err error) {
	var file *os.File
	file, err = os.Open(photoPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to open photo: %s", photoPath)
		return err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	var part io.Writer
	part, err = writer.CreateFormFile("photo", filepath.Base(photoPath))
	if err != nil {
		err = errors.Wrap(err, "failed to create multipart field")
		return err
	}

	_, err = io.Copy(part, file)
	if err != nil {
		err = errors.Wrap(err, "failed to read photo data")
		return err
	}

	err = writer.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to finalize multipart body")
		return err
	}

	url := fmt.Sprintf("%s/twins/%s/diary/%s/photos", c.baseURL, twinID, entryID)
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		err = errors.Wrap(err, "failed to create upload request")
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var resp *http.Response
	resp, err = c.httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "photo upload failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		err = &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		return err
	}

	return err
}
