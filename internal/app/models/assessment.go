package models

type Assessment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TemplateID string `json:"templateId"`
	Status     string `json:"status"`
	DueDate    string `json:"dueDate,omitempty"`
	AccountID  string `json:"accountId"`
	TimeModel
	Extra Extras `json:"-"`
}

type assessmentFields Assessment

func (a Assessment) GetID() string       { return a.ID }
func (a Assessment) ReferenceID() string { return a.AccountID }

func (a Assessment) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(assessmentFields(a), a.Extra)
}

func (a *Assessment) UnmarshalJSON(data []byte) error {
	var fields assessmentFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*a = Assessment(fields)
	a.Extra = extras
	return nil
}
