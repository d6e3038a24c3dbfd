package request_models

type TransportLegRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Datetime    string `json:"datetime"`
	Mode        string `json:"mode"`
	Carrier     string `json:"carrier"`
	TicketRef   string `json:"ticket_ref"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}
