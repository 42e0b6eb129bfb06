package model

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// StoredUser is a login record. Credentials are kept in the clear on
// purpose: this is a single-host tool and the storage layer is the trust
// boundary, exactly like the system it replaces.
type StoredUser struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// Session is the single active login. Its presence gates the protected
// views; logout deletes the record outright.
type Session struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	Token    string   `json:"token,omitempty"`
}
