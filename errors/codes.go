package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_INVALID_PAYLOAD

	// Ingestion errors
	ErrorCode_TRANSCRIPT_EMPTY
	ErrorCode_TRANSCRIPT_NOT_FOUND
	ErrorCode_SUBTITLE_PARSE_FAILED
	ErrorCode_IMPORT_PARSE_FAILED

	// Annotation errors
	ErrorCode_CODE_FILE_NOT_RECOGNIZED
	ErrorCode_CODE_APPLY_FAILED

	// Database errors
	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED

	// Integration errors
	ErrorCode_INTEGRATION_CACHE_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_TRANSCRIPT_EMPTY:         "TRANSCRIPT_EMPTY",
	ErrorCode_TRANSCRIPT_NOT_FOUND:     "TRANSCRIPT_NOT_FOUND",
	ErrorCode_SUBTITLE_PARSE_FAILED:    "SUBTITLE_PARSE_FAILED",
	ErrorCode_IMPORT_PARSE_FAILED:      "IMPORT_PARSE_FAILED",
	ErrorCode_CODE_FILE_NOT_RECOGNIZED: "CODE_FILE_NOT_RECOGNIZED",
	ErrorCode_CODE_APPLY_FAILED:        "CODE_APPLY_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:     "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED: "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
