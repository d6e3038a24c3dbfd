package request_models

// MemberRequest is used for both create and wholesale update.
type MemberRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}
