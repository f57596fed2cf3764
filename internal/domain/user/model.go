package user

// Principal is the authenticated administrator identity reported by the
// external account service.
type Principal struct {
	UserID string
	Email  string
}
