package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("soft failures keep status 200 with success false", func(t *testing.T) {
		for _, appErr := range []*domainerrors.BaseError{
			domainerrors.ErrAlreadyRegistered,
			domainerrors.ErrWrongPassword,
			domainerrors.ErrWeakPassword,
		} {
			rec, body := handleErr(t, appErr.WrapMessage("rejected"))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, appErr.Message(), body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, appErr.ErrorCode(), body.Error.Code)
		}
	})

	t.Run("app errors carry their own status", func(t *testing.T) {
		rec, body := handleErr(t, domainerrors.ErrEmailNotRegistered.WrapMessage("rejected"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "EMAIL_NOT_REGISTERED", body.Error.Code)
	})

	t.Run("validation errors list every field", func(t *testing.T) {
		err := domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "email", Message: "is required"},
			{Field: "phone", Message: "must be a 10-digit number"},
		})

		rec, body := handleErr(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "email", body.Errors[0].Field)
	})

	t.Run("echo http errors pass through", func(t *testing.T) {
		rec, body := handleErr(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", body.Message)
	})

	t.Run("unknown errors become 500 with the raw message", func(t *testing.T) {
		rec, body := handleErr(t, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "connection refused", body.Error.Details)
	})
}
