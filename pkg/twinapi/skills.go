package twinapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListSkills returns the twin's skills. 404 and unrecognized shapes
// degrade to an empty list.
func (c *Client) ListSkills(ctx context.Context, twinID string) (skills []twin.Skill, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/skills", twinID))
	if err != nil {
		if IsNotFound(err) {
			skills = []twin.Skill{}
			err = nil
			return skills, err
		}
		err = errors.Wrap(err, "failed to list skills")
		return skills, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		skills = []twin.Skill{}
		err = nil
		return skills, err
	}

	if payload.Kind == envelope.KindObject {
		skills = []twin.Skill{twin.DecodeSkill(payload.Raw)}
		return skills, err
	}

	skills = twin.DecodeSkills(payload.Raw)
	return skills, err
}

// GetSkill fetches one skill, decoded, with the raw document retained
// on Skill.Raw for lossless rewrites.
func (c *Client) GetSkill(ctx context.Context, twinID, skillID string) (skill twin.Skill, err error) {
	var doc []byte
	doc, err = c.GetSkillDocument(ctx, twinID, skillID)
	if err != nil {
		return skill, err
	}
	skill = twin.DecodeSkill(doc)
	return skill, err
}

// GetSkillDocument fetches the raw normalized skill document. The
// reconciler works on this form so a whole-entity rewrite carries every
// field the backend sent, including ones this client does not model.
func (c *Client) GetSkillDocument(ctx context.Context, twinID, skillID string) (doc []byte, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/skills/%s", twinID, skillID))
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch skill %s", skillID)
		return doc, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode skill %s", skillID)
		return doc, err
	}
	if payload.Kind != envelope.KindObject {
		err = errors.Errorf("expected a single skill document for %s, got a list", skillID)
		return doc, err
	}

	doc = payload.Raw
	return doc, err
}

// ReplaceSkillDocument PUTs the entire skill document back, unrelated
// fields included. This is the only write the backend offers for most
// nested mutations.
func (c *Client) ReplaceSkillDocument(ctx context.Context, twinID, skillID string, doc []byte) (err error) {
	_, err = c.putJSON(ctx, fmt.Sprintf("/twins/%s/skills/%s", twinID, skillID), doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to replace skill %s", skillID)
		return err
	}
	return err
}

// CreateSkill creates a skill with defaults applied.
func (c *Client) CreateSkill(ctx context.Context, twinID string, skill twin.Skill) (created twin.Skill, err error) {
	skill.ApplyDefaults()
	err = skill.Validate()
	if err != nil {
		return created, err
	}

	var payload []byte
	payload, err = json.Marshal(skill)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal skill")
		return created, err
	}

	var body []byte
	body, err = c.postJSON(ctx, fmt.Sprintf("/twins/%s/skills", twinID), payload)
	if err != nil {
		err = errors.Wrap(err, "failed to create skill")
		return created, err
	}

	created = skill
	if normalized, normErr := envelope.Normalize(body); normErr == nil && normalized.Kind == envelope.KindObject {
		created = twin.DecodeSkill(normalized.Raw)
	}
	return created, err
}

// UpdateLearning rewrites one learning through its per-child endpoint.
// Learning is the one child type the backend addresses directly;
// everything else goes through whole-parent replacement.
func (c *Client) UpdateLearning(ctx context.Context, twinID, skillID string, learning twin.Learning) (err error) {
	var payload []byte
	payload, err = json.Marshal(learning)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal learning")
		return err
	}

	_, err = c.putJSON(ctx, fmt.Sprintf("/twins/%s/skills/%s/learning/%s", twinID, skillID, learning.ID), payload)
	if err != nil {
		err = errors.Wrapf(err, "failed to update learning %s", learning.ID)
		return err
	}
	return err
}

// SearchLearning queries the backend's learning search across all of
// the twin's skills. 404 means no results.
func (c *Client) SearchLearning(ctx context.Context, twinID, query string) (learnings []twin.Learning, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/search-learning?query=%s", twinID, url.QueryEscape(query)))
	if err != nil {
		if IsNotFound(err) {
			learnings = []twin.Learning{}
			err = nil
			return learnings, err
		}
		err = errors.Wrap(err, "learning search failed")
		return learnings, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		learnings = []twin.Learning{}
		err = nil
		return learnings, err
	}

	if payload.Kind == envelope.KindList {
		for _, s := range twin.DecodeSkills(payload.Raw) {
			learnings = append(learnings, s.WhatLearned...)
		}
		return learnings, err
	}

	learnings = twin.DecodeSkill(payload.Raw).WhatLearned
	return learnings, err
}
