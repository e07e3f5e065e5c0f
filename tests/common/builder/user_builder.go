//go:build unit || e2e

package builder

import (
	"ticketing-notifier/internal/domain/user"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    100,
		Name:  "Maria Lopez",
		Email: "maria@example.com",
		Phone: "+1-555-0100",
		Role:  user.RoleMember,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsTechnical() *UserBuilder {
	u.Role = user.RoleTechnical
	if u.Name == "Maria Lopez" {
		u.Name = "Ana Ruiz"
		u.Email = "ana@example.com"
	}
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) BuildDomain() *user.User {
	return &user.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func (u *UserBuilder) BuildMember(memberID int64) *user.Member {
	apartmentID := int64(1)
	return &user.Member{ID: memberID, UserID: u.ID, ApartmentID: &apartmentID}
}

func (u *UserBuilder) BuildTechnical(technicalID int64) *user.Technical {
	return &user.Technical{ID: technicalID, UserID: u.ID, Name: u.Name, Phone: u.Phone}
}
