package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)

	Error(c, http.StatusUnprocessableEntity, "invalid_phone", "Phone number must be 10-15 digits!", nil)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	if !c.IsAborted() {
		t.Fatalf("expected context aborted")
	}
	var payload ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "invalid_phone" {
		t.Fatalf("unexpected code %q", payload.Error.Code)
	}
	if payload.Error.Message != "Phone number must be 10-15 digits!" {
		t.Fatalf("unexpected message %q", payload.Error.Message)
	}
}

func TestAttachmentHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodPost, "/resume", nil)

	Attachment(c, "application/pdf", "Resume.pdf", []byte("%PDF-1.3"))

	if got := resp.Header().Get("Content-Disposition"); got != `attachment; filename="Resume.pdf"` {
		t.Fatalf("unexpected Content-Disposition %q", got)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected Content-Type %q", got)
	}
	if got := resp.Header().Get("Content-Length"); got != "8" {
		t.Fatalf("unexpected Content-Length %q", got)
	}
	if resp.Body.String() != "%PDF-1.3" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}
