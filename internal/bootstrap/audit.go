package bootstrap

import "context"

// AuditLog is one security-relevant event: sign-in, sign-out, shutdown.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
