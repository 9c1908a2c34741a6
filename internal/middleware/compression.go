package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a gzip middleware for clients that accept it.
// PDF and XLSX downloads are already compressed and are passed through.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/view-pdf", "/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{
			`^/api/estimations/[0-9]+/file$`,
			`^/api/costsummaries/[0-9]+/export$`,
		}),
	)
}
