package ports

// Actor identifies the authenticated user a mutation is attributed to.
// Handlers build it from JWT claims and pass it explicitly into every service
// call; nothing reads it from ambient state.
type Actor struct {
	ID   int
	Name string
	Role string
}
