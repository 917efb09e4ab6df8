package user

import "strings"

// User is the read side of the school's user directory. Accounts are managed elsewhere.
type User struct {
	ID          uint   `gorm:"primaryKey;column:users_id;autoIncrement" json:"users_id"`
	SchoolID    string `gorm:"size:64;column:users_school_id" json:"users_school_id"`
	FirstName   string `gorm:"size:100;column:users_fname" json:"users_fname"`
	MiddleName  string `gorm:"size:100;column:users_mname" json:"users_mname"`
	LastName    string `gorm:"size:100;column:users_lname" json:"users_lname"`
	Suffix      string `gorm:"size:20;column:users_suffix" json:"users_suffix"`
	Email       string `gorm:"size:255;column:users_email" json:"users_email"`
	UserLevelID int    `gorm:"column:users_user_level_id" json:"users_user_level_id"`
	IsActive    bool   `gorm:"column:users_is_active" json:"users_is_active"`
}

func (User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	parts := []string{u.FirstName, u.MiddleName, u.LastName, u.Suffix}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
