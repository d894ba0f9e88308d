package models

type Role string

const (
	RoleMember  string = "member"
	RoleChief   string = "chief"
	RoleManager string = "manager"
)

type User struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
	DepartmentFlag int    `gorm:"not null;index" json:"department_flag"`
	DepartmentID   uint   `gorm:"not null;index" json:"department_id"`
	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Role           string `gorm:"default:'member'" json:"role"`
}

// CanEditOthers reports whether the user may edit other members' work logs.
// Chiefs and managers can; members can only edit their own.
func (u *User) CanEditOthers() bool {
	return u.Role == RoleChief || u.Role == RoleManager
}

// SetRole sets the user role.
func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

// TableName sets the table name in the DB.
func (User) TableName() string {
	return "users"
}
