package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/u4rad/camp-service/internal/domain/model"
)

// Audited actions.
const (
	ActionLogin             = "login"
	ActionLogout            = "logout"
	ActionSelectionReplaced = "selection_replaced"
	ActionCostsDistributed  = "costs_distributed"
	ActionSummaryCreated    = "summary_created"
	ActionPDFUploaded       = "pdf_uploaded"
	ActionUserCreated       = "user_created"
	ActionCompanyDeleted    = "company_deleted"
)

// AuditLog records a domain action of the current request. sink may be nil.
func AuditLog(sink LogSink, c *gin.Context, action, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(auditEntry(c, "info", action, message, fields))
}

// AuditLogError records a failed domain action of the current request.
func AuditLogError(sink LogSink, c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, "error", action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, action, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		ActionType: action,
		UserID:     GetUserID(c),
		Username:   GetUsername(c),
		Fields:     fields,
	}
	if c.Request != nil {
		entry.Method = c.Request.Method
		entry.Path = c.Request.URL.Path
		entry.IP = c.ClientIP()
		entry.UserAgent = c.Request.UserAgent()
	}
	return entry
}
