package models

type Contact struct {
	ID                string `json:"id"`
	FirstName         string `json:"FirstName"`
	LastName          string `json:"LastName"`
	Email             string `json:"Email,omitempty"`
	Phone             string `json:"Phone,omitempty"`
	Title             string `json:"Title,omitempty"`
	Department        string `json:"Department,omitempty"`
	AccountID         string `json:"AccountId"`
	MailingStreet     string `json:"MailingStreet,omitempty"`
	MailingCity       string `json:"MailingCity,omitempty"`
	MailingState      string `json:"MailingState,omitempty"`
	MailingPostalCode string `json:"MailingPostalCode,omitempty"`
	MailingCountry    string `json:"MailingCountry,omitempty"`
	TimeModel
	Extra Extras `json:"-"`
}

type contactFields Contact

func (c Contact) GetID() string       { return c.ID }
func (c Contact) ReferenceID() string { return c.AccountID }

func (c Contact) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(contactFields(c), c.Extra)
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	var fields contactFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*c = Contact(fields)
	c.Extra = extras
	return nil
}
