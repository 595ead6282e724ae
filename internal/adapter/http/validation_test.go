package http

import (
	"errors"
	"strings"
	"testing"
	"time"

	"greentracker-backend/internal/usecase/category"
	"greentracker-backend/internal/usecase/feedback"
	"greentracker-backend/internal/usecase/unit"
	"greentracker-backend/internal/usecase/uploadperiod"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestNoPathSepValidation(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(category.Input{Name: "Energy & Climate"}); err != nil {
		t.Fatalf("expected valid name, got err: %v", err)
	}
	for _, s := range []string{"a/b", "what?", "x#y"} {
		err := cv.Validate(category.Input{Name: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "name", "must not contain") {
			t.Fatalf("expected nopathsep message for %q, got: %+v", s, fe)
		}
	}
}

func TestFeedbackValidation(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(feedback.Input{Feedback: "approved"}); err != nil {
		t.Fatalf("expected approved to pass, got %v", err)
	}
	err := cv.Validate(feedback.Input{Feedback: "great"})
	if err == nil {
		t.Fatalf("expected feedback error")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "feedback", "must be one of approved") {
		t.Fatalf("expected feedback message, got %+v", fe)
	}
}

func TestNestedFieldNamesUseJSON(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(unit.Input{
		Name:                  "Campus",
		Email:                 "not-an-email",
		Password:              "short",
		RecommendedCategories: []unit.CategoryRef{{IndicatorIndex: 1, CategoryName: "Energy"}, {}},
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "email", "valid email address") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "password", "at least 8 characters") {
		t.Fatalf("missing min message: %+v", fe)
	}
	if !containsFieldMsg(fe, "recommendedCategories[1].indicatorIndex", "is required") {
		t.Fatalf("missing nested required message: %+v", fe)
	}
	if containsFieldMsg(fe, "recommendedCategories[0].categoryName", "") {
		t.Fatalf("valid element reported: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string `validate:"required"`
		Min  int    `validate:"gte=10"`
		Max  int    `validate:"lte=5"`
		Link string `validate:"url"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Min: 9, Max: 6, Link: "nope"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Link", "valid URL") {
		t.Fatalf("missing url message for Link: %+v", fe)
	}
}

func TestUploadPeriodOrdering(t *testing.T) {
	cv := NewValidator()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if err := cv.Validate(uploadperiod.Input{StartTimestamp: start, EndTimestamp: start.Add(time.Hour)}); err != nil {
		t.Fatalf("expected ordered period to pass, got %v", err)
	}
	err := cv.Validate(uploadperiod.Input{StartTimestamp: start, EndTimestamp: start})
	if err == nil {
		t.Fatalf("expected gtfield error")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "endTimestamp", "must be after startTimestamp") {
		t.Fatalf("missing gtfield message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
