package models

import "brm-service/internal/pkg/utils"

type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
	TimeModel
	Extra Extras `json:"-"`
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	Extra       Extras     `json:"-"`
}

type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Extra    Extras   `json:"-"`
}

type (
	templateFields Template
	sectionFields  Section
	questionFields Question
)

func (t Template) GetID() string       { return t.ID }
func (t Template) ReferenceID() string { return "" }

func (t Template) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(templateFields(t), t.Extra)
}

func (t *Template) UnmarshalJSON(data []byte) error {
	var fields templateFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*t = Template(fields)
	t.Extra = extras
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(sectionFields(s), s.Extra)
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var fields sectionFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*s = Section(fields)
	s.Extra = extras
	return nil
}

func (q Question) MarshalJSON() ([]byte, error) {
	return encodeWithExtras(questionFields(q), q.Extra)
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var fields questionFields
	extras, err := decodeWithExtras(data, &fields)
	if err != nil {
		return err
	}
	*q = Question(fields)
	q.Extra = extras
	return nil
}

// AssignMissingIDs gives every section and question without an id a fresh one,
// and replaces nil lists with empty ones.
func (t *Template) AssignMissingIDs() {
	if t.Sections == nil {
		t.Sections = []Section{}
	}
	for i := range t.Sections {
		section := &t.Sections[i]
		if section.ID == "" {
			section.ID = utils.GenerateID()
		}
		if section.Questions == nil {
			section.Questions = []Question{}
		}
		for j := range section.Questions {
			if section.Questions[j].ID == "" {
				section.Questions[j].ID = utils.GenerateID()
			}
		}
	}
}
