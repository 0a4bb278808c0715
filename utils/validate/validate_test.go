package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cErr "talentpulse/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type plainQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=10"`
}

func contextFor(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestBindQueryAndValidate(t *testing.T) {
	var ok plainQuery
	if cause, responseErr := BindQueryAndValidate(contextFor("limit=3"), &ok); cause != nil || responseErr != nil {
		t.Fatalf("BindQueryAndValidate() = (%v, %v)", cause, responseErr)
	}
	if ok.Limit != 3 {
		t.Errorf("Limit = %d, want 3", ok.Limit)
	}

	var bad plainQuery
	cause, responseErr := BindQueryAndValidate(contextFor("limit=30"), &bad)
	if cause == nil {
		t.Fatal("cause = nil, want validation error")
	}
	appErr := cErr.From(responseErr)
	if appErr.ErrorCode() != cErr.BAD_REQUEST_QUERY {
		t.Errorf("code = %d", appErr.ErrorCode())
	}
	if !strings.Contains(appErr.ErrorDesc(), `Field "limit" (type: int) failed the 'max' validation`) {
		t.Errorf("desc = %q", appErr.ErrorDesc())
	}
}

func TestBindQueryAndValidate_TypeError(t *testing.T) {
	var bad plainQuery
	_, responseErr := BindQueryAndValidate(contextFor("limit=abc"), &bad)
	if responseErr == nil {
		t.Fatal("responseErr = nil, want error")
	}
	if !strings.HasPrefix(cErr.From(responseErr).ErrorDesc(), "Validation error: ") {
		t.Errorf("desc = %q", cErr.From(responseErr).ErrorDesc())
	}
}
