package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trinhquocthinh/foodhub/pkg/enums"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Emma"}`))
	var dest samplePayload
	if err := DecodeJSONBody(req, &dest); err != nil {
		t.Fatalf("DecodeJSONBody: %v", err)
	}
	if dest.Name != "Emma" {
		t.Fatalf("unexpected payload %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Emma","extra":true}`))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldMessages(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email"}`))
	var dest samplePayload
	err := DecodeJSONBody(req, &dest)
	if err == nil {
		t.Fatal("expected validation error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected coded error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %#v", typed.Details())
	}
	if details["name"] != "is required" {
		t.Fatalf("unexpected name message %q", details["name"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
}

func TestParseQueryCategoryDefaultsToAll(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	category, err := ParseQueryCategory(req)
	if err != nil {
		t.Fatalf("ParseQueryCategory: %v", err)
	}
	if category != enums.CategoryAll {
		t.Fatalf("expected all, got %s", category)
	}
}

func TestParseQueryCategoryRejectsUnknown(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/menu?category=breakfast", nil)
	if _, err := ParseQueryCategory(req); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParseQueryTags(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/menu?tags=vegan,%20signature", nil)
	tags, err := ParseQueryTags(req)
	if err != nil {
		t.Fatalf("ParseQueryTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != enums.TagVegan || tags[1] != enums.TagSignature {
		t.Fatalf("unexpected tags %v", tags)
	}

	req = httptest.NewRequest(http.MethodGet, "/menu?tags=vegan,unknown", nil)
	if _, err := ParseQueryTags(req); err == nil {
		t.Fatal("expected error for unknown tag")
	}
}
