package domain

// Role represents the editorial role of an actor.
type Role string

const (
	RoleReporter Role = "Reporter"
	RoleEditor   Role = "Editor"
)

// Actor is the resolved identity executing an operation. It is built once
// per session by the session resolver and passed explicitly into every
// call; nothing infers role from ambient state. An Actor with an empty
// Role is authenticated but authorized for nothing.
type Actor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// IsEditor reports whether the actor holds the Editor role.
func (a *Actor) IsEditor() bool {
	return a != nil && a.Role == RoleEditor
}

// IsReporter reports whether the actor holds the Reporter role.
func (a *Actor) IsReporter() bool {
	return a != nil && a.Role == RoleReporter
}
