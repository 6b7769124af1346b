package models

// Contractor is a single contractor sign-in entry.
type Contractor struct {
	ID           string `json:"_id" bson:"-"`
	Company      string `json:"company" bson:"company"`
	Engineer     string `json:"engineer" bson:"engineer"`
	JobCallOut   string `json:"jobCallOut" bson:"jobCallOut"`
	Action       string `json:"action" bson:"action"`
	Date         string `json:"date" bson:"date"` // YYYY-MM-DD
	TimeIn       string `json:"timeIn" bson:"timeIn"`
	TimeOut      string `json:"timeOut" bson:"timeOut"`
	PhoneNumber  string `json:"phoneNumber" bson:"phoneNumber"`
	AccessCardNo string `json:"accessCardNo" bson:"accessCardNo"`
}

func (c Contractor) RecordID() string   { return c.ID }
func (c Contractor) RecordDate() string { return c.Date }

// SearchFields are the display fields matched by the free-text search.
// The date is not searchable for contractors.
func (c Contractor) SearchFields() []string {
	return []string{
		c.Company,
		c.Engineer,
		c.JobCallOut,
		c.Action,
		c.TimeIn,
		c.TimeOut,
		c.PhoneNumber,
		c.AccessCardNo,
	}
}

// Validate runs the phone number and access card checks.
func (c Contractor) Validate() error {
	if !ValidPhoneNumber(c.PhoneNumber) {
		return ErrPhoneNumber
	}
	if !ValidAccessCardNo(c.AccessCardNo) {
		return ErrAccessCardNo
	}
	return nil
}

// Field is one named contractor field, keyed by its wire name.
type Field struct {
	Name  string
	Value string
}

// ContractorPayload is the request body of POST and PUT /api/contractor.
// A nil field was absent from the body.
type ContractorPayload struct {
	Company      *Text `json:"company"`
	Engineer     *Text `json:"engineer"`
	JobCallOut   *Text `json:"jobCallOut"`
	Action       *Text `json:"action"`
	Date         *Text `json:"date"`
	TimeIn       *Text `json:"timeIn"`
	TimeOut      *Text `json:"timeOut"`
	PhoneNumber  *Text `json:"phoneNumber"`
	AccessCardNo *Text `json:"accessCardNo"`
}

// Contractor builds a full record, absent fields become empty strings.
func (p ContractorPayload) Contractor() Contractor {
	return Contractor{
		Company:      textPtr(p.Company),
		Engineer:     textPtr(p.Engineer),
		JobCallOut:   textPtr(p.JobCallOut),
		Action:       textPtr(p.Action),
		Date:         textPtr(p.Date),
		TimeIn:       textPtr(p.TimeIn),
		TimeOut:      textPtr(p.TimeOut),
		PhoneNumber:  textPtr(p.PhoneNumber),
		AccessCardNo: textPtr(p.AccessCardNo),
	}
}

// Fields lists the fields present in the payload in schema order.
func (p ContractorPayload) Fields() []Field {
	all := []struct {
		name string
		v    *Text
	}{
		{"company", p.Company},
		{"engineer", p.Engineer},
		{"jobCallOut", p.JobCallOut},
		{"action", p.Action},
		{"date", p.Date},
		{"timeIn", p.TimeIn},
		{"timeOut", p.TimeOut},
		{"phoneNumber", p.PhoneNumber},
		{"accessCardNo", p.AccessCardNo},
	}

	fields := make([]Field, 0, len(all))
	for _, f := range all {
		if f.v != nil {
			fields = append(fields, Field{Name: f.name, Value: string(*f.v)})
		}
	}
	return fields
}

// Validate checks only the fields present in the payload.
func (p ContractorPayload) Validate() error {
	if p.PhoneNumber != nil && !ValidPhoneNumber(string(*p.PhoneNumber)) {
		return ErrPhoneNumber
	}
	if p.AccessCardNo != nil && !ValidAccessCardNo(string(*p.AccessCardNo)) {
		return ErrAccessCardNo
	}
	return nil
}

// PayloadFrom converts a full record into an update payload carrying every field.
func PayloadFrom(c Contractor) ContractorPayload {
	t := func(s string) *Text { v := Text(s); return &v }
	return ContractorPayload{
		Company:      t(c.Company),
		Engineer:     t(c.Engineer),
		JobCallOut:   t(c.JobCallOut),
		Action:       t(c.Action),
		Date:         t(c.Date),
		TimeIn:       t(c.TimeIn),
		TimeOut:      t(c.TimeOut),
		PhoneNumber:  t(c.PhoneNumber),
		AccessCardNo: t(c.AccessCardNo),
	}
}
