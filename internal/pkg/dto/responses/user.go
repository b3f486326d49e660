package responses

type User struct {
	ExternalID      string        `json:"external_id"`
	Email           string        `json:"email,omitempty"`
	TelephoneNumber string        `json:"telephone_number,omitempty"`
	Disabled        bool          `json:"disabled,omitempty"`
	SessionVersion  int           `json:"session_version,omitempty"`
	ServiceRoles    []ServiceRole `json:"service_roles,omitempty"`
}

type ServiceRole struct {
	ServiceExternalID string   `json:"service_external_id"`
	RoleName          string   `json:"role_name,omitempty"`
	Permissions       []string `json:"permissions,omitempty"`
}
