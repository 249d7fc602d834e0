package auth

// Account roles. Self-service registration always yields RoleUser; elevated
// roles are assigned through the users resource by an admin.
const (
	RoleAdmin = "ADMIN"
	RoleHR    = "HR"
	RoleUser  = "USER"
)
