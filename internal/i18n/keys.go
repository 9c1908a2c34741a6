// Package i18n provides internationalization support for the camp service.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyValidation         = "error.validation"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyCouponNotFound     = "error.coupon_not_found"
	ErrKeyConflict           = "error.conflict"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyInvalidID          = "error.invalid_id"
	ErrKeyMissingPDF         = "error.missing_pdf"
	ErrKeyMethodNotAllowed   = "error.method_not_allowed"
	ErrKeyMethodNotSupported = "error.method_not_supported"
	ErrKeyServiceUnavailable = "error.service_unavailable"
	ErrKeyTimeout            = "error.timeout"
)

// Success message translation keys.
const (
	SuccessKeyPackageCostsSaved = "success.package_costs_saved"
	SuccessKeyPDFUploaded       = "success.pdf_uploaded"
	SuccessKeyLoggedOut         = "success.logged_out"
	SuccessKeyDeleted           = "success.deleted"
)
