package models

const DefaultBio = "New user"

// User 用户表. Password is stored as given, login compares it verbatim.
type User struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Email     string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password  string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Bio       string `gorm:"column:bio;type:varchar(255);not null;default:'New user'" json:"bio"`
	Followers int    `gorm:"column:followers;not null;default:0" json:"followers"`
	Following int    `gorm:"column:following;not null;default:0" json:"following"`
}

func (User) TableName() string {
	return "users"
}
