package patch_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/patch"
)

type villa struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details"`
	Occupancy int    `json:"occupancy"`
	ImageURL  string `json:"imageUrl"`
}

func requireName(v any) error {
	if v.(*villa).Name == "" {
		return domain.NewValidationError("name is required")
	}
	return nil
}

func messages(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	return ve.Messages
}

func TestApply_Replace(t *testing.T) {
	v := &villa{ID: 5, Name: "Pool House", Occupancy: 2}
	err := patch.Apply(v, []byte(`[{"op":"replace","path":"/occupancy","value":4}]`), requireName)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v.Occupancy != 4 || v.Name != "Pool House" || v.ID != 5 {
		t.Fatalf("unexpected result: %+v", v)
	}
}

func TestApply_OrderMatters(t *testing.T) {
	forward := `[{"op":"replace","path":"/occupancy","value":4},{"op":"replace","path":"/occupancy","value":6}]`
	reverse := `[{"op":"replace","path":"/occupancy","value":6},{"op":"replace","path":"/occupancy","value":4}]`

	a := &villa{Name: "x"}
	b := &villa{Name: "x"}
	if err := patch.Apply(a, []byte(forward), nil); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if err := patch.Apply(b, []byte(reverse), nil); err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if a.Occupancy != 6 || b.Occupancy != 4 {
		t.Fatalf("operations not applied in order: forward=%d reverse=%d", a.Occupancy, b.Occupancy)
	}
}

func TestApply_TestOpSeesEarlierOperations(t *testing.T) {
	ok := `[{"op":"replace","path":"/name","value":"Cabin"},{"op":"test","path":"/name","value":"Cabin"}]`
	bad := `[{"op":"test","path":"/name","value":"Cabin"},{"op":"replace","path":"/name","value":"Cabin"}]`

	v := &villa{Name: "Pool House"}
	if err := patch.Apply(v, []byte(ok), nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v.Name != "Cabin" {
		t.Fatalf("expected name Cabin, got %q", v.Name)
	}

	w := &villa{Name: "Pool House"}
	if err := patch.Apply(w, []byte(bad), nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApply_FailingTestAbortsWithoutChanges(t *testing.T) {
	v := &villa{ID: 1, Name: "Pool House", Occupancy: 2}
	doc := `[
		{"op":"replace","path":"/occupancy","value":9},
		{"op":"test","path":"/name","value":"Other"},
		{"op":"replace","path":"/details","value":"never"}
	]`
	err := patch.Apply(v, []byte(doc), requireName)
	msgs := messages(t, err)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "test failed") {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	if v.Occupancy != 2 || v.Details != "" {
		t.Fatalf("target modified after failed test: %+v", v)
	}
}

func TestApply_CollectsErrorsAndLeavesTargetUntouched(t *testing.T) {
	v := &villa{ID: 1, Name: "Pool House", Occupancy: 2}
	doc := `[
		{"op":"remove","path":"/nosuchfield"},
		{"op":"replace","path":"/occupancy","value":3},
		{"op":"replace","path":"/name","value":""}
	]`
	err := patch.Apply(v, []byte(doc), requireName)
	msgs := messages(t, err)
	if len(msgs) != 2 {
		t.Fatalf("expected operation and validation messages, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "operation 0") || msgs[1] != "name is required" {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	if v.Occupancy != 2 || v.Name != "Pool House" {
		t.Fatalf("target modified on failure: %+v", v)
	}
}

func TestApply_PathCaseInsensitive(t *testing.T) {
	v := &villa{Name: "Pool House"}
	doc := `[{"op":"Replace","Path":"/Name","value":"Cabin"},{"op":"copy","from":"/Name","path":"/Details"}]`
	if err := patch.Apply(v, []byte(doc), requireName); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v.Name != "Cabin" || v.Details != "Cabin" {
		t.Fatalf("unexpected result: %+v", v)
	}

	w := &villa{}
	if err := patch.Apply(w, []byte(`[{"op":"replace","path":"/ImageUrl","value":"http://x"}]`), nil); err != nil {
		t.Fatalf("apply camel case member: %v", err)
	}
	if w.ImageURL != "http://x" {
		t.Fatalf("imageUrl not patched: %+v", w)
	}
}

func TestApply_PathMatchesAnyCase(t *testing.T) {
	tests := []struct {
		path string
		want func(*villa) bool
	}{
		{"/imageUrl", func(v *villa) bool { return v.ImageURL == "z" }},
		{"/ImageURL", func(v *villa) bool { return v.ImageURL == "z" }},
		{"/IMAGEURL", func(v *villa) bool { return v.ImageURL == "z" }},
		{"/DETAILS", func(v *villa) bool { return v.Details == "z" }},
		{"/nAmE", func(v *villa) bool { return v.Name == "z" }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := &villa{Name: "Pool House"}
			doc := `[{"op":"replace","path":"` + tt.path + `","value":"z"}]`
			if err := patch.Apply(v, []byte(doc), nil); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if !tt.want(v) {
				t.Fatalf("path %s not applied: %+v", tt.path, v)
			}
		})
	}
}

func TestApply_Move(t *testing.T) {
	v := &villa{Name: "Pool House", Details: "sea view"}
	doc := `[{"op":"move","from":"/details","path":"/name"},{"op":"add","path":"/details","value":""}]`
	if err := patch.Apply(v, []byte(doc), requireName); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v.Name != "sea view" || v.Details != "" {
		t.Fatalf("unexpected result: %+v", v)
	}
}

func TestApply_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{{`},
		{"object instead of array", `{"op":"replace"}`},
		{"null document", `null`},
		{"unknown op", `[{"op":"increment","path":"/occupancy","value":1}]`},
		{"unknown field", `[{"op":"add","path":"/color","value":"red"}]`},
		{"wrong type", `[{"op":"replace","path":"/occupancy","value":"many"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &villa{Name: "Pool House", Occupancy: 2}
			err := patch.Apply(v, []byte(tt.doc), nil)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if v.Occupancy != 2 {
				t.Fatalf("target modified: %+v", v)
			}
		})
	}
}

func TestApply_NilTarget(t *testing.T) {
	var v *villa
	if err := patch.Apply(v, []byte(`[]`), nil); err == nil || errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected programming error for nil target, got %v", err)
	}
}
