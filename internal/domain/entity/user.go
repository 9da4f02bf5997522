package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User representa un usuario del directorio (admin o comercial).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         string // admin, sales
	Avatar       string
}

// Actor es el usuario autenticado que invoca un caso de uso.
// Se construye a partir de los claims del token, sin consultar el directorio.
type Actor struct {
	UserID string
	Name   string
	Role   string
}

// IsAdmin informa si el actor ve y modifica los registros de todos los comerciales.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Owns informa si el actor es dueño del registro o si es admin.
func (a Actor) Owns(ownerID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == ownerID)
}

// DisplayName nombre usado en el historial de estados.
func (a Actor) DisplayName() string {
	if a.Name == "" {
		return "Unknown"
	}
	return a.Name
}
