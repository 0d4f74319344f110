package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXUserID       = "X-User-ID"
	HeaderXOrgID        = "X-Org-ID"
	HeaderXUserRole     = "X-User-Role"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyOrgID     = "org_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Roles forwarded by the platform gateway
	RoleAdmin           = "admin"
	RolePMOLead         = "pmo_lead"
	RoleInitiativeOwner = "initiative_owner"
	RoleSponsor         = "sponsor"

	// Database table names
	TableWorkItems           = "work_items"
	TableEscalationRecords   = "escalation_records"
	TableOutboxNotifications = "outbox_notifications"
	TableUserPreferences     = "user_preferences"
	TableAuditEntries        = "audit_entries"
	TableProjectMembers      = "project_members"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
