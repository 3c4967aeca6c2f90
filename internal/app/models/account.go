package models

type Account struct {
	ID                string `json:"id"`
	Name              string `json:"Name"`
	Phone             string `json:"Phone,omitempty"`
	Website           string `json:"Website,omitempty"`
	Industry          string `json:"Industry,omitempty"`
	Description       string `json:"Description,omitempty"`
	BillingStreet     string `json:"BillingStreet,omitempty"`
	BillingCity       string `json:"BillingCity,omitempty"`
	BillingState      string `json:"BillingState,omitempty"`
	BillingPostalCode string `json:"BillingPostalCode,omitempty"`
	BillingCountry    string `json:"BillingCountry,omitempty"`
	TimeModel
	Extra Extras `json:"-"`
}

type accountFields Account

func (a Account) GetID() string       { return a.ID }
func (a Account) ReferenceID() string { return "" }

func (a Account) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(accountFields(a), a.Extra)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var fields accountFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*a = Account(fields)
	a.Extra = extras
	return nil
}
