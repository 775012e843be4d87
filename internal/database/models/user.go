package models

// Role represents the role of a user within its organization
type Role string

// RoleAdmin is the only role issued; each organization gets exactly one admin at creation
const RoleAdmin Role = "admin"

// User is an organization's admin account. Organization is referenced by name, not by ID.
type User struct {
	BaseModel        `bson:",inline"`
	Email            string `json:"email" bson:"email" gorm:"column:email;index;not null;size:255"`
	Password         string `json:"-" bson:"password" gorm:"column:password;not null"`
	Role             Role   `json:"role" bson:"role" gorm:"column:role;type:varchar(20);not null;default:'admin'"`
	OrganizationName string `json:"organization_name" bson:"organization_name" gorm:"column:organization_name;index;not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return UsersCollection
}
