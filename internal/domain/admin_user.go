package domain

type AdminRole string

const (
	AdminRoleManager AdminRole = "MANAGER"
	AdminRoleStaff   AdminRole = "STAFF"
)

type AdminUser struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	CreatedOn    string    `json:"created_on"`
}
