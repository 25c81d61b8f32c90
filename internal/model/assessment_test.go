package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerValueUnmarshal(t *testing.T) {
	var answers Answers
	raw := `{"q6":"tier1-2","q9":["gots","grs"],"q15":"prominently"}`
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if answers.Str("q6") != "tier1-2" {
		t.Errorf("q6 = %q", answers.Str("q6"))
	}
	if !reflect.DeepEqual(answers.List("q9"), []string{"gots", "grs"}) {
		t.Errorf("q9 = %v", answers.List("q9"))
	}
	if answers.Str("q9") != "" {
		t.Error("multi answer must not read as a single value")
	}
	if answers.List("q6") != nil {
		t.Error("single answer must not read as a list")
	}

	var bad Answers
	if err := json.Unmarshal([]byte(`{"q6":42}`), &bad); err == nil {
		t.Error("numeric answer should fail to unmarshal")
	}
}

func TestAnswersToggleExclusive(t *testing.T) {
	a := Answers{}
	a.Toggle("q9", "gots", 0)
	a.Toggle("q9", "grs", 0)

	// An exclusive value replaces the whole set
	a.Toggle("q9", "none", 0)
	if !reflect.DeepEqual(a.List("q9"), []string{"none"}) {
		t.Errorf("after none: %v", a.List("q9"))
	}

	// A regular value evicts the exclusive
	a.Toggle("q9", "gots", 0)
	if !reflect.DeepEqual(a.List("q9"), []string{"gots"}) {
		t.Errorf("after gots: %v", a.List("q9"))
	}
}

func TestAnswersToggleReselectRemoves(t *testing.T) {
	a := Answers{}
	a.Toggle("q9", "gots", 0)
	a.Toggle("q9", "grs", 0)
	a.Toggle("q9", "gots", 0)

	if !reflect.DeepEqual(a.List("q9"), []string{"grs"}) {
		t.Errorf("reselect should remove, got %v", a.List("q9"))
	}
}

func TestAnswersToggleMaxSelect(t *testing.T) {
	a := Answers{}
	a.Toggle("q16", "espr", 3)
	a.Toggle("q16", "green-claims", 3)
	a.Toggle("q16", "dmcca", 3)
	a.Toggle("q16", "textile-labelling", 3)

	// Oldest selection drops to make room
	want := []string{"green-claims", "dmcca", "textile-labelling"}
	if !reflect.DeepEqual(a.List("q16"), want) {
		t.Errorf("got %v, want %v", a.List("q16"), want)
	}
}

func TestSectionComplete(t *testing.T) {
	sec := &Section{Questions: []Question{
		{ID: "q6", Type: QuestionTypeSingle},
		{ID: "q9", Type: QuestionTypeMulti},
	}}

	a := Answers{}
	if a.SectionComplete(sec) {
		t.Error("empty answers cannot complete a section")
	}

	a.SetSingle("q6", "tier1")
	if a.SectionComplete(sec) {
		t.Error("unanswered multi question should block completion")
	}

	a.Toggle("q9", "gots", 0)
	if !a.SectionComplete(sec) {
		t.Error("section should be complete")
	}
}
