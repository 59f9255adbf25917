package reconcile

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/twinops/twinctl/pkg/twin"
	"github.com/twinops/twinctl/pkg/twinapi"
)

// Package reconcile implements the fetch-mutate-replace cycle for
// nested children of a parent entity the backend only exposes for
// whole-entity replacement. The concrete instance is the learning
// collection nested in a skill. The rewrite operates on the raw fetched
// document, so every field the backend sent, modeled here or not,
// goes back unchanged except for the mutated collection. There is no
// version token on the parent, so concurrent writers race and the last
// PUT wins; that is the backend's contract, not a choice made here.

// ErrParentNotFound means the parent skill could not be fetched or the
// response carried no identity-bearing object.
var ErrParentNotFound = errors.New("parent skill not found")

// SkillSource is the slice of the twin API the reconciler needs.
type SkillSource interface {
	GetSkillDocument(ctx context.Context, twinID, skillID string) (doc []byte, err error)
	ReplaceSkillDocument(ctx context.Context, twinID, skillID string, doc []byte) (err error)
	UpdateLearning(ctx context.Context, twinID, skillID string, learning twin.Learning) (err error)
}

// Reconciler mutates one element of a skill's learning collection and
// persists the whole parent back.
type Reconciler struct {
	source SkillSource
}

// New creates a reconciler over the given source.
func New(source SkillSource) (r *Reconciler) {
	r = &Reconciler{source: source}
	return r
}

// AddLearning appends a new learning to the parent skill. The child
// gets a client-generated UUID and creation timestamps before the
// whole-parent PUT. Nothing is written until that final PUT, so any
// earlier failure aborts cleanly. On success the second return value is
// the skill's updated learning collection, built copy-on-write so the
// decoded originals are never touched.
func (r *Reconciler) AddLearning(ctx context.Context, twinID, skillID string, draft twin.Learning) (created twin.Learning, learned []twin.Learning, err error) {
	err = draft.Validate()
	if err != nil {
		return created, learned, err
	}

	var doc []byte
	doc, err = r.fetchParent(ctx, twinID, skillID)
	if err != nil {
		return created, learned, err
	}

	created = draft
	created.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	created.DateCreated = now
	created.DateUpdated = now

	var childJSON []byte
	childJSON, err = json.Marshal(created)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal learning")
		return created, learned, err
	}

	// "-1" appends; existing elements stay byte-identical.
	var updated []byte
	updated, err = sjson.SetRawBytes(doc, learnedKey(doc)+".-1", childJSON)
	if err != nil {
		err = errors.Wrap(err, "failed to append learning to parent document")
		return created, learned, err
	}

	err = r.source.ReplaceSkillDocument(ctx, twinID, skillID, updated)
	if err != nil {
		err = errors.Wrap(err, "failed to persist parent skill")
		return created, learned, err
	}

	learned = appendLearning(twin.DecodeSkill(doc).WhatLearned, created)
	return created, learned, err
}

// UpdateLearning rewrites one learning through the backend's per-child
// endpoint. Learning supports direct addressing for updates; add and
// delete still round-trip the whole parent. The parent is read first so
// a missing skill surfaces as ErrParentNotFound and the caller gets the
// updated collection back.
func (r *Reconciler) UpdateLearning(ctx context.Context, twinID, skillID string, learning twin.Learning) (learned []twin.Learning, err error) {
	if learning.ID == "" {
		err = errors.New("learning id is required for update")
		return learned, err
	}
	err = learning.Validate()
	if err != nil {
		return learned, err
	}

	var doc []byte
	doc, err = r.fetchParent(ctx, twinID, skillID)
	if err != nil {
		return learned, err
	}

	learning.DateUpdated = time.Now().UTC().Format(time.RFC3339)

	err = r.source.UpdateLearning(ctx, twinID, skillID, learning)
	if err != nil {
		err = errors.Wrapf(err, "failed to update learning %s", learning.ID)
		return learned, err
	}

	learned = replaceLearning(twin.DecodeSkill(doc).WhatLearned, learning)
	return learned, err
}

// DeleteLearning removes a learning by id via whole-parent rewrite.
// Deleting an id that is not present is an idempotent no-op and issues
// no write at all. The returned collection is what the skill holds
// after the call.
func (r *Reconciler) DeleteLearning(ctx context.Context, twinID, skillID, learningID string) (learned []twin.Learning, err error) {
	var doc []byte
	doc, err = r.fetchParent(ctx, twinID, skillID)
	if err != nil {
		return learned, err
	}

	key := learnedKey(doc)
	var kept []string
	removed := false
	for _, item := range gjson.GetBytes(doc, key).Array() {
		id := item.Get("id").String()
		if id == "" {
			id = item.Get("Id").String()
		}
		if id == learningID {
			removed = true
			continue
		}
		kept = append(kept, item.Raw)
	}

	existing := twin.DecodeSkill(doc).WhatLearned
	if !removed {
		learned = existing
		return learned, err
	}

	arr := "[" + strings.Join(kept, ",") + "]"
	var updated []byte
	updated, err = sjson.SetRawBytes(doc, key, []byte(arr))
	if err != nil {
		err = errors.Wrap(err, "failed to rewrite learning collection")
		return learned, err
	}

	err = r.source.ReplaceSkillDocument(ctx, twinID, skillID, updated)
	if err != nil {
		err = errors.Wrap(err, "failed to persist parent skill")
		return learned, err
	}

	learned = removeLearning(existing, learningID)
	return learned, err
}

// fetchParent fetches the parent document and verifies it is an
// identity-bearing object.
func (r *Reconciler) fetchParent(ctx context.Context, twinID, skillID string) (doc []byte, err error) {
	doc, err = r.source.GetSkillDocument(ctx, twinID, skillID)
	if err != nil {
		if twinapi.IsNotFound(err) {
			err = errors.Wrapf(ErrParentNotFound, "skill %s", skillID)
			return doc, err
		}
		return doc, err
	}

	parsed := gjson.ParseBytes(doc)
	if !parsed.IsObject() || !parsed.Get("id").Exists() && !parsed.Get("Id").Exists() && !parsed.Get("name").Exists() && !parsed.Get("Name").Exists() {
		err = errors.Wrapf(ErrParentNotFound, "skill %s", skillID)
		return doc, err
	}

	return doc, err
}

// learnedKey returns the casing of the nested collection key as the
// backend sent it, defaulting to camelCase when absent.
func learnedKey(doc []byte) (key string) {
	if gjson.GetBytes(doc, "WhatLearned").Exists() {
		key = "WhatLearned"
		return key
	}
	key = "whatLearned"
	return key
}
