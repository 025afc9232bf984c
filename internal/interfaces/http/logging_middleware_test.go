package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

func TestSanitizeBody_OcultaPassword(t *testing.T) {
	got := sanitizeBody([]byte(`{"email":"a@b.c","password": "s3cr\"eto","code":"123456"}`))
	assert.Equal(t, `{"email":"a@b.c","password": "***","code":"***"}`, got)
}

func TestSanitizeBody_Trunca(t *testing.T) {
	got := sanitizeBody([]byte(strings.Repeat("x", maxLoggedBody+50)))
	assert.True(t, strings.HasSuffix(got, "...(truncado)"))
	assert.Len(t, got, maxLoggedBody+len("...(truncado)"))
}

func TestRequestLogger_RegistraStatusDelError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Nop())})
	app.Use(RequestLogger(log))
	app.Post("/x", func(c *fiber.Ctx) error { return domain.ErrTeacherNotFound })

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"password":"abc"}`))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := buf.String()
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `\"password\":\"***\"`)
	assert.NotContains(t, out, "abc")
}

func TestClassify_Clases(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidID, 400, "INVALID_ID"},
		{domain.ErrNotCourseEnrollment, 400, "BAD_REQUEST"},
		{domain.ErrInvalidCredentials, 401, "UNAUTHORIZED"},
		{domain.ErrInactiveUser, 403, "FORBIDDEN"},
		{domain.ErrEnrollmentNotFound, 404, "NOT_FOUND"},
		{domain.ErrAlreadyEnrolled, 409, "CONFLICT"},
		{domain.ErrRiskServiceUnavailable, 502, "BAD_GATEWAY"},
		{fiber.ErrMethodNotAllowed, 405, "METHOD_NOT_ALLOWED"},
		{assert.AnError, 500, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code, _ := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}
