package civic

// APIResponse is the top-level response from the officials API.
type APIResponse struct {
	Response struct {
		Results struct {
			Candidates []struct {
				MatchAddress string     `json:"match_addr"`
				MatchRegion  string     `json:"match_region"`
				MatchPostal  string     `json:"match_postal"`
				Officials    []Official `json:"officials"`
			} `json:"candidates"`
		} `json:"results"`
	} `json:"response"`
}

// Official represents an elected official from the officials API.
type Official struct {
	OfficialID     int      `json:"id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Party          string   `json:"party"`
	WebFormURL     *string  `json:"web_form_url"`
	Urls           []string `json:"urls"`
	EmailAddresses []string `json:"email_addresses"`
	PhotoOriginURL string   `json:"photo_origin_url"`
	Office         Office   `json:"office"`
}

// Office represents an office held by an official.
type Office struct {
	Title             string   `json:"title"`
	RepresentingState string   `json:"representing_state"`
	District          District `json:"district"`
}

// District represents an electoral district.
type District struct {
	Type       string `json:"district_type"`
	DistrictID string `json:"district_id"`
	Label      string `json:"label"`
	State      string `json:"state"`
}
