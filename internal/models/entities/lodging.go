package entities

const (
	LodgingStatusConfirmed = "confirmed"
	LodgingStatusOpen      = "open"
)

// Lodging is a hotel reservation. Dates are calendar dates (YYYY-MM-DD)
// with no time zone.
type Lodging struct {
	ID                 string `json:"id"`
	City               string `json:"city"`
	HotelName          string `json:"hotel_name"`
	Address            string `json:"address"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	FreeCancelDeadline string `json:"free_cancel_deadline,omitempty"`
	Site               string `json:"site,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Status             string `json:"status"`
}
