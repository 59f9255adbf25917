package twinapi_test

import (
	"context"
	"net/http"
	"testing"
)

func TestGetSkillDocumentUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/twins/t1/skills/s1" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"skill":{"id":"s1","name":"Go","whatLearned":[]}}`))
	})

	doc, err := client.GetSkillDocument(context.Background(), "t1", "s1")
	if err != nil {
		t.Fatalf("GetSkillDocument failed: %v", err)
	}

	if string(doc) != `{"id":"s1","name":"Go","whatLearned":[]}` {
		t.Errorf("Expected the inner skill document, got %s", doc)
	}
}

func TestGetSkillDocumentRejectsList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"s1"}]`))
	})

	_, err := client.GetSkillDocument(context.Background(), "t1", "s1")
	if err == nil {
		t.Error("Expected error for list response, got nil")
	}
}

func TestListSkillsDecodesNestedLearnings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[` +
			`{"id":"s1","Name":"Go","WhatLearned":[{"Id":"L1","Name":"Goroutines","Content":"threads"}]}]}`))
	})

	skills, err := client.ListSkills(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ListSkills failed: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("Expected 1 skill, got %d", len(skills))
	}

	// PascalCase variants decode the same as camelCase.
	if skills[0].Name != "Go" {
		t.Errorf("Expected name 'Go', got '%s'", skills[0].Name)
	}
	if len(skills[0].WhatLearned) != 1 || skills[0].WhatLearned[0].ID != "L1" {
		t.Errorf("Expected nested learning L1, got %+v", skills[0].WhatLearned)
	}
}

func TestSearchLearningEscapesQuery(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	_, err := client.SearchLearning(context.Background(), "t1", "go routines")
	if err != nil {
		t.Fatalf("SearchLearning failed: %v", err)
	}
	if rawQuery != "query=go+routines" {
		t.Errorf("Expected escaped query, got %s", rawQuery)
	}
}

func TestSearchLearning404MeansNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	learnings, err := client.SearchLearning(context.Background(), "t1", "anything")
	if err != nil {
		t.Fatalf("Expected 404 to mean no results, got %v", err)
	}
	if len(learnings) != 0 {
		t.Errorf("Expected no learnings, got %d", len(learnings))
	}
}
