package entities

// UserProfile is derived at login time and never persisted.
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}
