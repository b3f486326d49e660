package ledger_dto

type TransactionSearchResult struct {
	Total   int           `json:"total"`
	Count   int           `json:"count"`
	Page    int           `json:"page"`
	Results []Transaction `json:"results"`
	Links   *SearchLinks  `json:"_links,omitempty"`
}

type SearchLinks struct {
	Self     *Link `json:"self,omitempty"`
	First    *Link `json:"first_page,omitempty"`
	Last     *Link `json:"last_page,omitempty"`
	PrevPage *Link `json:"prev_page,omitempty"`
	NextPage *Link `json:"next_page,omitempty"`
}

type Link struct {
	Href string `json:"href,omitempty"`
}
