package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeValidation         ErrorCode = "COMMON_007"
	ErrCodeSerialization      ErrorCode = "COMMON_008"
	ErrCodeDatabaseError      ErrorCode = "COMMON_009"
	ErrCodeCacheError         ErrorCode = "COMMON_010"
	ErrCodeStorageError       ErrorCode = "COMMON_011"
	ErrCodeMessagingError     ErrorCode = "COMMON_012"

	CodeOK ErrorCode = "OK"
)

// Document module error codes
const (
	ErrCodeDocumentNotFound    ErrorCode = "DOC_001"
	ErrCodeDocumentEmpty       ErrorCode = "DOC_002"
	ErrCodeDocumentTooLarge    ErrorCode = "DOC_003"
	ErrCodeUnsupportedFileType ErrorCode = "DOC_004"
)

// Analysis module error codes
const (
	ErrCodeAnalysisFailed    ErrorCode = "ANA_001"
	ErrCodeSegmentationEmpty ErrorCode = "ANA_002"
	ErrCodeQuestionEmpty     ErrorCode = "ANA_003"
)

// Compliance module error codes
const (
	ErrCodeComplianceFailed        ErrorCode = "CMP_001"
	ErrCodeJurisdictionUnsupported ErrorCode = "CMP_002"
)

// errorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var errorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeStorageError:       http.StatusInternalServerError,
	ErrCodeMessagingError:     http.StatusInternalServerError,

	ErrCodeDocumentNotFound:    http.StatusNotFound,
	ErrCodeDocumentEmpty:       http.StatusBadRequest,
	ErrCodeDocumentTooLarge:    http.StatusRequestEntityTooLarge,
	ErrCodeUnsupportedFileType: http.StatusBadRequest,

	ErrCodeAnalysisFailed:    http.StatusInternalServerError,
	ErrCodeSegmentationEmpty: http.StatusUnprocessableEntity,
	ErrCodeQuestionEmpty:     http.StatusBadRequest,

	ErrCodeComplianceFailed:        http.StatusInternalServerError,
	ErrCodeJurisdictionUnsupported: http.StatusBadRequest,
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode maps to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}
