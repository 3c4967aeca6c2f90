package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountJSONKeepsUntypedFields(t *testing.T) {
	input := `{"id":"a1","Name":"Acme","Phone":5551234,"Custom":{"tier":"gold"},"createdAt":"2024-01-01T00:00:00.000Z"}`

	var account Account
	require.NoError(t, json.Unmarshal([]byte(input), &account))

	assert.Equal(t, "a1", account.ID)
	assert.Equal(t, "Acme", account.Name)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", account.CreatedAt)
	assert.Empty(t, account.Phone)
	assert.Len(t, account.Extra, 2)

	output, err := json.Marshal(account)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","Name":"Acme","Phone":5551234,"Custom":{"tier":"gold"},"createdAt":"2024-01-01T00:00:00.000Z","updatedAt":""}`, string(output))
}

func TestAccountJSONWithoutExtras(t *testing.T) {
	account := Account{ID: "a1", Name: "Acme", Phone: "123"}

	output, err := json.Marshal(account)
	require.NoError(t, err)

	var decoded Account
	require.NoError(t, json.Unmarshal(output, &decoded))
	assert.Equal(t, account, decoded)
	assert.Nil(t, decoded.Extra)
}

func TestTypedValueReplacesExtra(t *testing.T) {
	var account Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1","Phone":5551234}`), &account))

	account.Phone = "555-1234"
	output, err := json.Marshal(account)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(output, &fields))
	assert.Equal(t, "555-1234", fields["Phone"])
}

func TestTemplateJSONKeepsNestedFields(t *testing.T) {
	input := `{
		"id": "t1",
		"name": "Review",
		"sections": [{
			"id": "s1",
			"title": "Basics",
			"weight": 2,
			"questions": [
				{"id": "q1", "text": "Score", "type": "number", "required": "yes", "placeholder": "1-10"},
				{"id": "q2", "text": "Notes", "type": "text"}
			]
		}]
	}`

	var template Template
	require.NoError(t, json.Unmarshal([]byte(input), &template))

	require.Len(t, template.Sections, 1)
	section := template.Sections[0]
	require.Len(t, section.Questions, 2)
	assert.Equal(t, "Score", section.Questions[0].Text)
	assert.False(t, section.Questions[0].Required)
	assert.JSONEq(t, `"yes"`, string(section.Questions[0].Extra["required"]))
	assert.JSONEq(t, `"1-10"`, string(section.Questions[0].Extra["placeholder"]))
	assert.JSONEq(t, "2", string(section.Extra["weight"]))

	output, err := json.Marshal(template)
	require.NoError(t, err)
	assert.Contains(t, string(output), `"placeholder"`)
	assert.Contains(t, string(output), `"weight"`)

	var roundTrip Template
	require.NoError(t, json.Unmarshal(output, &roundTrip))
	again, err := json.Marshal(roundTrip)
	require.NoError(t, err)
	assert.JSONEq(t, string(output), string(again))
}

func TestResponseTimelineAppendsPastMistypedEntry(t *testing.T) {
	input := `{"id":"r1","status":"Not Started","responses":[],"timeline":[{"id":"e1","status":"Not Started","user":42}]}`

	var response AssessmentResponse
	require.NoError(t, json.Unmarshal([]byte(input), &response))
	require.Len(t, response.Timeline, 1)
	assert.JSONEq(t, "42", string(response.Timeline[0].Extra["user"]))

	response.AppendTimeline("In Progress", "Response started")
	output, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded AssessmentResponse
	require.NoError(t, json.Unmarshal(output, &decoded))
	require.Len(t, decoded.Timeline, 2)
	assert.JSONEq(t, "42", string(decoded.Timeline[0].Extra["user"]))
}

func TestDecodeRejectsNonObject(t *testing.T) {
	var account Account
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &account))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &account))
}
