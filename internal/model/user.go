package model

type UserRole string

const (
	RoleAdmin   UserRole = "ROLE_ADMIN"
	RoleProf    UserRole = "ROLE_PROF"
	RoleStudent UserRole = "ROLE_STUDENT"
)

// swagger:model User
type User struct {
	BaseModel
	Email     string   `gorm:"size:180;unique;not null" json:"email"`
	Password  string   `gorm:"size:255;not null" json:"-"`
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Role      UserRole `gorm:"size:50;default:'ROLE_STUDENT'" json:"role"`
	NiveauID  *uint    `gorm:"index" json:"niveau_id"`
}

func (User) TableName() string {
	return "users"
}
