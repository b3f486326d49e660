package ledger_dto

type TransactionEvent struct {
	ResourceType string                 `json:"resource_type,omitempty"`
	EventType    string                 `json:"event_type,omitempty"`
	State        *TransactionState      `json:"state,omitempty"`
	Amount       int64                  `json:"amount,omitempty"`
	Timestamp    string                 `json:"timestamp,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`

	// Connector-parity fields, populated by the legacy transform.
	Type        string `json:"type,omitempty"`
	Updated     string `json:"updated,omitempty"`
	SubmittedBy string `json:"submitted_by,omitempty"`
}

type TransactionEventsResponse struct {
	TransactionID string             `json:"transaction_id,omitempty"`
	Events        []TransactionEvent `json:"events"`
}
