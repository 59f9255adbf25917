package twinapi

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListResumes returns the twin's stored résumés.
func (c *Client) ListResumes(ctx context.Context, twinID string) (resumes []twin.Resume, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/resumes", twinID))
	if err != nil {
		if IsNotFound(err) {
			resumes = []twin.Resume{}
			err = nil
			return resumes, err
		}
		err = errors.Wrap(err, "failed to list resumes")
		return resumes, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		resumes = []twin.Resume{}
		err = nil
		return resumes, err
	}

	if payload.Kind == envelope.KindObject {
		resumes = []twin.Resume{twin.DecodeResume(payload.Raw)}
		return resumes, err
	}

	resumes = twin.DecodeResumes(payload.Raw)
	return resumes, err
}

// ListHomes returns the twin's houses.
func (c *Client) ListHomes(ctx context.Context, twinID string) (homes []twin.Home, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/homes", twinID))
	if err != nil {
		if IsNotFound(err) {
			homes = []twin.Home{}
			err = nil
			return homes, err
		}
		err = errors.Wrap(err, "failed to list homes")
		return homes, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		homes = []twin.Home{}
		err = nil
		return homes, err
	}

	if payload.Kind == envelope.KindObject {
		homes = []twin.Home{twin.DecodeHome(payload.Raw)}
		return homes, err
	}

	homes = twin.DecodeHomes(payload.Raw)
	return homes, err
}
