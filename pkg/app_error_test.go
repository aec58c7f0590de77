package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("CLIENT_REQUIRED", "Client required", http.StatusConflict)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "CLIENT_REQUIRED: Client required" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
