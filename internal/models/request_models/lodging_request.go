package request_models

// LodgingRequest is the edit-form payload, used for both create and
// wholesale update.
type LodgingRequest struct {
	City               string `json:"city"`
	HotelName          string `json:"hotel_name"`
	Address            string `json:"address"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	FreeCancelDeadline string `json:"free_cancel_deadline"`
	Site               string `json:"site"`
	Phone              string `json:"phone"`
	Status             string `json:"status"`
}
