package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole represents a user's role in the system
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleStaff    UserRole = "staff"
	UserRoleCustomer UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is one of the known roles
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff, UserRoleCustomer:
		return true
	}
	return false
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = UserRole(str)
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleStaff
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(string(v))
	}
	return nil
}

// UserStatus represents the approval state of a staff account.
// New accounts start pending and only approved accounts may use the POS.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

func (s UserStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return true
	}
	return false
}

func (s UserStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *UserStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = UserStatus(str)
	return nil
}

func (s UserStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *UserStatus) Scan(value interface{}) error {
	if value == nil {
		*s = UserStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = UserStatus(v)
	case []byte:
		*s = UserStatus(string(v))
	}
	return nil
}
