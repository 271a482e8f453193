package requests

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/models?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	p := ParsePagination(testContext(t, "limit=25&offset=50"))
	if p.Limit == nil || *p.Limit != 25 {
		t.Fatalf("limit not parsed: %+v", p.Limit)
	}
	if p.Offset == nil || *p.Offset != 50 {
		t.Fatalf("offset not parsed: %+v", p.Offset)
	}
}

func TestParsePaginationIgnoresBadValues(t *testing.T) {
	cases := []string{"limit=abc&offset=-3", "limit=0", "limit=&offset="}
	for _, raw := range cases {
		p := ParsePagination(testContext(t, raw))
		if p.Limit != nil || p.Offset != nil {
			t.Fatalf("query %q should fall back to defaults, got %+v", raw, p)
		}
	}
}

func TestOptionalQuery(t *testing.T) {
	c := testContext(t, "category=text-generation&empty=")
	if got := OptionalQuery(c, "category"); got == nil || *got != "text-generation" {
		t.Fatalf("expected category value, got %v", got)
	}
	if got := OptionalQuery(c, "empty"); got != nil {
		t.Fatalf("empty parameter should yield nil, got %q", *got)
	}
	if got := OptionalQuery(c, "missing"); got != nil {
		t.Fatalf("missing parameter should yield nil, got %q", *got)
	}
}
