package domain

// Role роль пользователя в системе
type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// ParseRole валидирует и конвертирует строку в Role
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleOwner, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity аутентифицированный пользователь запроса.
// Поставляется внешним identity-провайдером и передаётся в операции явно.
type Identity struct {
	UserID int64
	Role   Role
}
