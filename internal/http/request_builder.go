package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/circuitbreaker"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/i18n"
	"github.com/u4rad/camp-service/internal/middleware"
	"github.com/u4rad/camp-service/internal/service"
)

func init() {
	// Report binding errors under the JSON field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validator is implemented by requests that validate themselves.
type Validator interface {
	Validate() error
}

// BindJSON decodes the body into v, runs the binding rules and then Validate
// when v implements it. Every failure is returned as model.ValidationErrors.
func BindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return bindingErrors(err)
	}
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}

// BuildRequest binds and validates a request of type T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := BindJSON(c, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// bindingErrors translates decoder and validator failures into field errors.
func bindingErrors(err error) model.ValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := model.ValidationErrors{}
		for _, fe := range verrs {
			fields[fieldPath(fe)] = ruleMessage(fe)
		}
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return model.FieldError(typeErr.Field, "must be "+jsonKind(typeErr.Type))
	}
	if errors.Is(err, io.EOF) {
		return model.FieldError("non_field_errors", "request body is empty")
	}
	return model.FieldError("non_field_errors", "request body is not valid JSON")
}

// fieldPath drops the top level struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "a list"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a string"
	}
}

// PathID parses the :id path parameter as a positive integer.
func PathID(c *gin.Context) (int64, bool) {
	return positiveInt(c.Param("id"))
}

// QueryID parses an optional positive integer query parameter. A missing
// parameter yields 0 and true.
func QueryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	return positiveInt(raw)
}

func positiveInt(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ResponseBuilder writes the success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Success:   true,
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now().UTC(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Message sends a translated confirmation message.
func (b *ResponseBuilder) Message(statusCode int, messageKey string) {
	b.Success(statusCode, dto.MessageResponse{Message: b.translate(messageKey)})
}

// Error sends an error envelope with the translated message of messageKey.
// err, when set, is attached to the context for the request log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, b.translate(messageKey), nil, err)
}

// Validation sends a 400 with one entry per rejected field.
func (b *ResponseBuilder) Validation(fields model.ValidationErrors) {
	b.abort(http.StatusBadRequest, b.translate(i18n.ErrKeyValidation), fields, nil)
}

// InvalidID sends the 400 for a malformed id parameter.
func (b *ResponseBuilder) InvalidID(field string) {
	b.abort(http.StatusBadRequest, b.translate(i18n.ErrKeyInvalidID),
		model.FieldError(field, b.translate(i18n.ErrKeyInvalidID)), nil)
}

// HandleError maps a service error onto its status code. Unknown errors
// become an opaque 500 and are logged with the request id.
func (b *ResponseBuilder) HandleError(err error) {
	var fields model.ValidationErrors
	switch {
	case errors.As(err, &fields):
		b.Validation(fields)
	case errors.Is(err, service.ErrNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	case errors.Is(err, service.ErrConflict):
		b.Error(http.StatusConflict, i18n.ErrKeyConflict, nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		b.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, nil)
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenBlacklisted):
		b.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, nil)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(b.c)).
			Str("method", b.c.Request.Method).
			Str("path", b.c.Request.URL.Path).
			Msg("Request failed")
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, nil)
	}
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

func (b *ResponseBuilder) abort(statusCode int, message string, fields map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c)).
		WithErrors(fields)
	b.c.AbortWithStatusJSON(statusCode, resp)
}
