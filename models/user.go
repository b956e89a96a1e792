package models

import (
	"time"
)

type Role string

const (
	RoleCustomer        Role = "customer"
	RoleServiceProvider Role = "service_provider"
)

// IsValidRole reports whether r belongs to the closed set of account roles.
// Unrecognized roles are rejected at the API boundary rather than defaulted.
func IsValidRole(r string) bool {
	return r == string(RoleCustomer) || r == string(RoleServiceProvider)
}

// Membership tiers.
const (
	MembershipNone  = "non_member"
	MembershipBasic = "member"
	MembershipSuper = "super_member"
)

func IsValidMembership(s string) bool {
	return s == MembershipNone || s == MembershipBasic || s == MembershipSuper
}

type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Username       string     `json:"username" gorm:"unique"`
	Password       string     `json:"password,omitempty"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Role           Role       `json:"role"`
	Status         string     `json:"status"`
	ProfilePicture string     `json:"profile_picture"`
	LastLoginTime  *time.Time `json:"last_login_time,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
