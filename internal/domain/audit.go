package domain

import "context"

// AdminAction is the record relayed to the audit service when an admin
// performs a destructive operation.
type AdminAction struct {
	Action      string `json:"action"`
	TargetID    string `json:"targetId"`
	TargetType  string `json:"targetType"`
	Description string `json:"description"`
}

// AuditRelay forwards an AdminAction to the audit service. The caller's own
// bearer token authenticates the relay call.
type AuditRelay interface {
	Relay(ctx context.Context, action AdminAction, bearerToken string) error
}
