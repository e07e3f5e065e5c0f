package user

// User is a read-only snapshot of an account owned by the CRUD application.
type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  Role
}

// CanReceivePush reports whether device push is available for this user. Only members have registered devices.
func (u *User) CanReceivePush() bool {
	return u.Role == RoleMember
}

// Member is the tenant-like profile attached to a member user.
type Member struct {
	ID          int64
	UserID      int64
	ApartmentID *int64
}

type Technical struct {
	ID     int64
	UserID int64
	Name   string
	Phone  string
}
