package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainagg "github.com/amcdental/dentalhub-backend/internal/domain/aggregates"
	"github.com/amcdental/dentalhub-backend/internal/platform/apierr"
)

func render(t *testing.T, err error) (int, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondAppError(c, err)

	var env ErrorEnvelope
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &env); decodeErr != nil {
		t.Fatalf("decode envelope: %v (%s)", decodeErr, rec.Body.String())
	}
	return rec.Code, env
}

func TestRespondAppErrorMapsCodes(t *testing.T) {
	cases := []struct {
		code domainagg.ErrorCode
		want int
	}{
		{domainagg.CodeValidation, http.StatusBadRequest},
		{domainagg.CodeNotFound, http.StatusNotFound},
		{domainagg.CodeConflict, http.StatusConflict},
		{domainagg.CodePreconditionFailed, http.StatusPreconditionFailed},
		{domainagg.CodeDependency, http.StatusInternalServerError},
		{domainagg.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, env := render(t, domainagg.NewError(tc.code, "Tracks.Track.Get", "boom", nil))
		if status != tc.want {
			t.Fatalf("%s: status got=%d want=%d", tc.code, status, tc.want)
		}
		if env.Error.Code != string(tc.code) {
			t.Fatalf("%s: code got=%q", tc.code, env.Error.Code)
		}
	}
}

func TestRespondAppErrorHidesServerCauses(t *testing.T) {
	SetDevelopmentMode(false)
	_, env := render(t, domainagg.NewError(domainagg.CodeDependency, "Tracks.Track.List", "relation \"track\" does not exist", nil))
	if env.Error.Message != genericServerMessage {
		t.Fatalf("message leaked: %q", env.Error.Message)
	}

	SetDevelopmentMode(true)
	t.Cleanup(func() { SetDevelopmentMode(false) })
	_, env = render(t, domainagg.NewError(domainagg.CodeDependency, "Tracks.Track.List", "relation \"track\" does not exist", nil))
	if env.Error.Message == genericServerMessage {
		t.Fatal("expected cause text in development mode")
	}
}

func TestRespondAppErrorClientMessages(t *testing.T) {
	_, env := render(t, domainagg.Validation("Tracks.Track.Create", "title is required"))
	if env.Error.Message != "title is required" {
		t.Fatalf("validation message: %q", env.Error.Message)
	}

	status, env := render(t, apierr.BadRequest("invalid_id", "invalid track id"))
	if status != http.StatusBadRequest || env.Error.Code != "invalid_id" {
		t.Fatalf("api error: status=%d code=%q", status, env.Error.Code)
	}

	status, env = render(t, errors.New("plain failure"))
	if status != http.StatusInternalServerError || env.Error.Code != string(domainagg.CodeInternal) {
		t.Fatalf("plain error: status=%d code=%q", status, env.Error.Code)
	}
}
