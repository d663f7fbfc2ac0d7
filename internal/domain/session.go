package domain

// Roles válidos de sesión.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer" // modo demo: solo lectura
)

// Session identifica al usuario autenticado en cada operación.
// Se pasa explícitamente a los casos de uso (nunca estado ambiente),
// para que el bloqueo de visualizador sea verificable sin mocks de entorno.
type Session struct {
	UserID string
	Role   string
}

// IsViewer indica si la sesión corresponde al modo demo/visualizador.
func (s Session) IsViewer() bool { return s.Role == RoleViewer }
