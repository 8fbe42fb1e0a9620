package bundle

import (
	"errors"
	"fmt"
)

// Error codes for the signing pipeline. Each code identifies one failure
// class from the bundle contract; callers branch on codes, not messages.
const (
	// ErrCodeIdentityMalformed indicates the certificate or private key
	// material could not be parsed, or the passphrase is wrong.
	ErrCodeIdentityMalformed = "IDENTITY_MALFORMED"

	// ErrCodeDescriptorInvalid indicates the pass violates a schema
	// invariant and no conforming descriptor can be produced.
	ErrCodeDescriptorInvalid = "DESCRIPTOR_INVALID"

	// ErrCodeManifestEncoding indicates the manifest could not be
	// serialized to canonical JSON.
	ErrCodeManifestEncoding = "MANIFEST_ENCODING_FAILED"

	// ErrCodeSigningFailed indicates the detached signature could not be
	// produced from otherwise well-formed identity material.
	ErrCodeSigningFailed = "SIGNING_FAILED"

	// ErrCodeArchiveWrite indicates writing the archive to its sink failed.
	ErrCodeArchiveWrite = "ARCHIVE_WRITE_FAILED"
)

// Error is a pipeline error carrying a failure-class code.
type Error struct {
	// Code is one of the ErrCode* constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// newError creates an Error with the given code and message.
func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// wrapError creates an Error that wraps an underlying cause.
func wrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinel errors for errors.Is checks.
var (
	// ErrIdentityMalformed is returned when signing identity material
	// cannot be parsed or decrypted.
	ErrIdentityMalformed = newError(ErrCodeIdentityMalformed, "signing identity material is malformed")

	// ErrDescriptorInvalid is returned when the pass cannot project a
	// schema-conforming descriptor.
	ErrDescriptorInvalid = newError(ErrCodeDescriptorInvalid, "pass violates a descriptor invariant")

	// ErrManifestEncoding is returned when manifest serialization fails.
	ErrManifestEncoding = newError(ErrCodeManifestEncoding, "encoding the manifest failed")

	// ErrSigningFailed is returned when detached signature generation fails.
	ErrSigningFailed = newError(ErrCodeSigningFailed, "signing the manifest failed")

	// ErrArchiveWrite is returned when the archive cannot be written.
	ErrArchiveWrite = newError(ErrCodeArchiveWrite, "writing the archive failed")
)

// GetErrorCode extracts the pipeline error code, or returns empty string.
func GetErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
