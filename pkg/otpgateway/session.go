package otpgateway

import "context"

// SessionKeyRequestID is the slot the client uses for the request id of the
// in-flight verification.
const SessionKeyRequestID = "request_id"

// SessionStore is the process- or session-scoped cache the client writes the
// request id into on a successful send. The host owns its lifetime. A nil
// store is legal; the client then only sees its own parameter bag. Store
// failures never fail a client operation: Get misses read as absent and Set
// and Delete errors are swallowed.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
