package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/dto"
	"github.com/u4rad/camp-service/internal/i18n"
)

// ErrorHandler returns a middleware that turns errors attached to the gin
// context into the opaque internal error envelope. The error text is only
// logged, never written to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("error", c.Errors.Last().Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			abortInternal(c)
		}
	}
}

// abortInternal writes the translated 500 envelope and stops the chain.
func abortInternal(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
}
