package domain

// Principal is the authenticated identity attached to a request. It is
// resolved once by the authn middleware from a verified token and passed
// explicitly into every authorization check; there is no ambient session
// state anywhere in the service.
type Principal struct {
	UserID   string
	Role     Role
	TenantID string
}
