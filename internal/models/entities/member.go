package entities

// TripMember is a person in the travel group. Members have no relation
// to login identities.
type TripMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}
