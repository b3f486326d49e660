package requests

// TransactionSearchRequest carries the list-page filters, bound from
// query parameters.
type TransactionSearchRequest struct {
	Page                 int    `json:"page" validate:"gte=1"`
	DisplaySize          int    `json:"display_size" validate:"gte=1,lte=500"`
	Reference            string `json:"reference,omitempty" validate:"omitempty,max=255"`
	Email                string `json:"email,omitempty" validate:"omitempty,max=254"`
	CardholderName       string `json:"cardholder_name,omitempty" validate:"omitempty,max=255"`
	LastDigitsCardNumber string `json:"last_digits_card_number,omitempty" validate:"omitempty,numeric,max=4"`
	State                string `json:"state,omitempty" validate:"omitempty,max=64"`
	FromDate             string `json:"from_date,omitempty"`
	ToDate               string `json:"to_date,omitempty"`
}

// FilterMap lists the active filters for echoing back on the view.
func (r *TransactionSearchRequest) FilterMap() map[string]string {
	filters := make(map[string]string)
	put := func(key, value string) {
		if value != "" {
			filters[key] = value
		}
	}
	put("reference", r.Reference)
	put("email", r.Email)
	put("cardholder_name", r.CardholderName)
	put("last_digits_card_number", r.LastDigitsCardNumber)
	put("state", r.State)
	put("from_date", r.FromDate)
	put("to_date", r.ToDate)
	return filters
}
