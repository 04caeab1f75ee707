package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeDocumentNotFound, "document not found")
	want := "[DOC_001] document not found"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	withDetail := err.WithDetail("id: doc_42")
	want = "[DOC_001] document not found: id: doc_42"
	if withDetail.Error() != want {
		t.Fatalf("Error() with detail = %q, want %q", withDetail.Error(), want)
	}

	// WithDetail must not mutate the original.
	if err.Detail != "" {
		t.Fatalf("WithDetail mutated the receiver: %q", err.Detail)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if got := Wrap(nil, ErrCodeInternal, "should vanish"); got != nil {
		t.Fatalf("Wrap(nil, ...) = %v, want nil", got)
	}
}

func TestWrapPreservesChain(t *testing.T) {
	root := stderrors.New("connection refused")
	wrapped := Wrap(root, ErrCodeDatabaseError, "failed to load document")

	if !stderrors.Is(wrapped, root) {
		t.Fatal("errors.Is could not find the root cause")
	}
	if !IsCode(wrapped, ErrCodeDatabaseError) {
		t.Fatal("IsCode failed on the wrapping error")
	}

	// A further fmt wrap must still be traversable.
	outer := fmt.Errorf("request failed: %w", wrapped)
	if !IsCode(outer, ErrCodeDatabaseError) {
		t.Fatal("IsCode failed through a fmt.Errorf wrapper")
	}
}

func TestIsCodeAcrossNestedAppErrors(t *testing.T) {
	inner := New(ErrCodeDocumentNotFound, "document not found")
	outer := Wrap(inner, ErrCodeAnalysisFailed, "analysis aborted")

	if !IsCode(outer, ErrCodeAnalysisFailed) {
		t.Fatal("outer code not detected")
	}
	if !IsCode(outer, ErrCodeDocumentNotFound) {
		t.Fatal("inner code not detected through the chain")
	}
	if IsCode(outer, ErrCodeCacheError) {
		t.Fatal("unrelated code reported as present")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != CodeOK {
		t.Fatalf("GetCode(nil) = %v, want %v", got, CodeOK)
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Fatalf("GetCode(plain) = %v, want %v", got, ErrCodeInternal)
	}
	if got := GetCode(New(ErrCodeQuestionEmpty, "empty")); got != ErrCodeQuestionEmpty {
		t.Fatalf("GetCode = %v, want %v", got, ErrCodeQuestionEmpty)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeDocumentNotFound, http.StatusNotFound},
		{ErrCodeDocumentEmpty, http.StatusBadRequest},
		{ErrCodeDocumentTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeQuestionEmpty, http.StatusBadRequest},
		{ErrCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrorCode("UNMAPPED_999"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatusForCode(tc.code); got != tc.want {
			t.Errorf("HTTPStatusForCode(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}

	if !IsClientError(ErrCodeDocumentEmpty) {
		t.Fatal("DOC_002 should be a client error")
	}
	if !IsServerError(ErrCodeStorageError) {
		t.Fatal("COMMON_011 should be a server error")
	}
}

func TestHelperConstructors(t *testing.T) {
	if !IsNotFound(NotFound("missing")) {
		t.Fatal("NotFound helper not detected by IsNotFound")
	}
	if !IsValidation(InvalidParam("bad input")) {
		t.Fatal("InvalidParam helper not detected by IsValidation")
	}
	if GetCode(Internal("boom")) != ErrCodeInternal {
		t.Fatal("Internal helper carries wrong code")
	}
}
