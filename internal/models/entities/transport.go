package entities

const (
	TransportModeFlight = "flight"
	TransportModeTrain  = "train"
	TransportModeCar    = "car"

	TransportStatusPaid    = "paid"
	TransportStatusPending = "pending"
)

// TransportLeg is one move between cities. Datetime is local wall-clock
// time in YYYY-MM-DDTHH:MM form.
type TransportLeg struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Datetime    string `json:"datetime"`
	Mode        string `json:"mode"`
	Carrier     string `json:"carrier"`
	TicketRef   string `json:"ticket_ref,omitempty"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}
