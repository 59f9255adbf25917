package twinapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListOpportunities returns the twin's job-application records.
func (c *Client) ListOpportunities(ctx context.Context, twinID string) (opps []twin.Opportunity, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/opportunities", twinID))
	if err != nil {
		if IsNotFound(err) {
			opps = []twin.Opportunity{}
			err = nil
			return opps, err
		}
		err = errors.Wrap(err, "failed to list opportunities")
		return opps, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		opps = []twin.Opportunity{}
		err = nil
		return opps, err
	}

	if payload.Kind == envelope.KindObject {
		opps = []twin.Opportunity{twin.DecodeOpportunity(payload.Raw)}
		return opps, err
	}

	opps = twin.DecodeOpportunities(payload.Raw)
	return opps, err
}

// GetOpportunity fetches one opportunity by id.
func (c *Client) GetOpportunity(ctx context.Context, twinID, oppID string) (opp twin.Opportunity, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/opportunities/%s", twinID, oppID))
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch opportunity %s", oppID)
		return opp, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode opportunity %s", oppID)
		return opp, err
	}

	opp = twin.DecodeOpportunity(payload.Raw)
	return opp, err
}

// CreateOpportunity creates a job-application record with client-side
// defaults applied.
func (c *Client) CreateOpportunity(ctx context.Context, twinID string, opp twin.Opportunity) (created twin.Opportunity, err error) {
	opp.ApplyDefaults()
	err = opp.Validate()
	if err != nil {
		return created, err
	}

	var payload []byte
	payload, err = json.Marshal(opp)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal opportunity")
		return created, err
	}

	var body []byte
	body, err = c.postJSON(ctx, fmt.Sprintf("/twins/%s/opportunities", twinID), payload)
	if err != nil {
		err = errors.Wrap(err, "failed to create opportunity")
		return created, err
	}

	created = opp
	if normalized, normErr := envelope.Normalize(body); normErr == nil && normalized.Kind == envelope.KindObject {
		created = twin.DecodeOpportunity(normalized.Raw)
	}
	return created, err
}

// UpdateOpportunity replaces an opportunity via full-entity PUT.
func (c *Client) UpdateOpportunity(ctx context.Context, twinID string, opp twin.Opportunity) (err error) {
	err = opp.Validate()
	if err != nil {
		return err
	}

	var payload []byte
	payload, err = json.Marshal(opp)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal opportunity")
		return err
	}

	_, err = c.putJSON(ctx, fmt.Sprintf("/twins/%s/opportunities/%s", twinID, opp.ID), payload)
	if err != nil {
		err = errors.Wrapf(err, "failed to update opportunity %s", opp.ID)
		return err
	}
	return err
}

// DeleteOpportunity removes an opportunity by id.
func (c *Client) DeleteOpportunity(ctx context.Context, twinID, oppID string) (err error) {
	err = c.delete(ctx, fmt.Sprintf("/twins/%s/opportunities/%s", twinID, oppID))
	if err != nil {
		err = errors.Wrapf(err, "failed to delete opportunity %s", oppID)
		return err
	}
	return err
}
