package models

// CastMember represents a cast member in credits
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Order     int    `json:"order,omitempty"`
}

// Credits represents cast information appended to a detail record
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// Genre represents a catalog genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
