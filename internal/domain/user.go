package domain

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

// User 只读，HTTP 接口不提供创建和修改
type User struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
