package hd

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	KeyFormatNotFound     ErrorCode = "key-format-not-found"
	InvalidWIFFormat      ErrorCode = "invalid-wif-format"
	InvalidBase64Format   ErrorCode = "invalid-base64-format"
	InvalidBase58         ErrorCode = "invalid-base58"
	ChecksumMismatch      ErrorCode = "checksum-mismatch"
	InvalidKey            ErrorCode = "invalid-key"
	InvalidKeyForIndex    ErrorCode = "invalid-key-for-index"
	PrivatePublicMismatch ErrorCode = "private-public-mismatch"
	ImportError           ErrorCode = "import-error"
	UnknownNetwork        ErrorCode = "unknown-network"
	InvalidPath           ErrorCode = "invalid-path"
)

type ErrorInfo struct {
	Code    ErrorCode // machine-readable ErrorCode enumeration
	Message string    // human-readable debug message
}

func (e *ErrorInfo) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewErr(code ErrorCode, format string, args ...any) error {
	return &ErrorInfo{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether err, or any error it wraps, is an ErrorInfo with the given code.
func IsError(err error, ofType ErrorCode) bool {
	var e *ErrorInfo
	if errors.As(err, &e) {
		return e.Code == ofType
	}
	return false
}

// IsInvalidKeyForIndex reports a per-index derivation failure. The event has
// negligible probability; callers decide whether to move on to the next index.
func IsInvalidKeyForIndex(err error) bool {
	return IsError(err, InvalidKeyForIndex)
}

func IsPrivatePublicMismatch(err error) bool {
	return IsError(err, PrivatePublicMismatch)
}
