package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDate       = "date"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldPlayerID   = "player_id"
	FieldMatchID    = "match_id"
	FieldSessionID  = "session_id"
	FieldDurationMS = "duration_ms"
)
