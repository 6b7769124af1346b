package models

// Visitor is a single visitor sign-in entry.
type Visitor struct {
	ID       string `json:"_id" bson:"-"`
	Name     string `json:"name" bson:"name"`
	Company  string `json:"company" bson:"company"`
	Visiting string `json:"visiting" bson:"visiting"` // host or purpose
	Date     string `json:"date" bson:"date"`         // YYYY-MM-DD
	TimeIn   string `json:"timeIn" bson:"timeIn"`
}

func (v Visitor) RecordID() string   { return v.ID }
func (v Visitor) RecordDate() string { return v.Date }

// SearchFields are the display fields matched by the free-text search.
func (v Visitor) SearchFields() []string {
	return []string{v.Name, v.Company, v.Visiting, v.Date}
}

// VisitorPayload is the request body of POST /api/visitor. Every field is
// optional.
type VisitorPayload struct {
	Name     Text `json:"name"`
	Company  Text `json:"company"`
	Visiting Text `json:"visiting"`
	Date     Text `json:"date"`
	TimeIn   Text `json:"timeIn"`
}

func (p VisitorPayload) Visitor() Visitor {
	return Visitor{
		Name:     string(p.Name),
		Company:  string(p.Company),
		Visiting: string(p.Visiting),
		Date:     string(p.Date),
		TimeIn:   string(p.TimeIn),
	}
}
