package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type sampleInput struct {
	Name      string          `json:"name" validate:"required"`
	Quality   *string         `json:"sleepQuality" validate:"omitempty,oneof=poor fair good excellent"`
	Level     *int            `json:"energyLevel" validate:"omitempty,gte=1,lte=10"`
	Exercises json.RawMessage `json:"exercises" validate:"omitempty,json_array"`
	Slug      string          `json:"slug" validate:"omitempty,slug"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	quality := "good"
	level := 10
	err := ValidateStruct(&sampleInput{
		Name:      "x",
		Quality:   &quality,
		Level:     &level,
		Exercises: json.RawMessage(`[{"name":"squat","sets":3}]`),
		Slug:      "week-3-update",
	})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	quality := "amazing"
	level := 11
	err := ValidateStruct(&sampleInput{Quality: &quality, Level: &level})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var reqErr *RequestValidationError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestValidationError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("validation errors must match ErrInvalidInput")
	}

	got := map[string]string{}
	for _, f := range reqErr.Fields {
		got[f.Field] = f.Tag
	}
	want := map[string]string{"name": "required", "sleepQuality": "oneof", "energyLevel": "lte"}
	for field, tag := range want {
		if got[field] != tag {
			t.Fatalf("expected %s to fail %s, got %v", field, tag, got)
		}
	}
	if !strings.Contains(err.Error(), "sleepQuality must be one of: poor fair good excellent") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestJSONArrayRule(t *testing.T) {
	cases := map[string]bool{
		`[]`:          true,
		`["a","b"]`:   true,
		`[{"k":"v"}]`: true,
		`{"k":"v"}`:   false,
		`"list"`:      false,
		`null`:        false,
		`[1, 2`:       false,
	}
	for raw, ok := range cases {
		err := ValidateStruct(&sampleInput{Name: "x", Exercises: json.RawMessage(raw)})
		if ok && err != nil {
			t.Fatalf("%s should be accepted, got %v", raw, err)
		}
		if !ok && err == nil {
			t.Fatalf("%s should be rejected", raw)
		}
	}
}

func TestSlugRule(t *testing.T) {
	for _, slug := range []string{"Week 3", "week_3", "-week", "week-"} {
		if err := ValidateStruct(&sampleInput{Name: "x", Slug: slug}); err == nil {
			t.Fatalf("slug %q should be rejected", slug)
		}
	}
}

func TestInvalidMatchesErrInvalidInput(t *testing.T) {
	err := Invalid("serviceId", "serviceId does not reference an existing service")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Invalid must match ErrInvalidInput")
	}
	if err.Fields[0].Field != "serviceId" {
		t.Fatalf("unexpected field: %+v", err.Fields)
	}
}
