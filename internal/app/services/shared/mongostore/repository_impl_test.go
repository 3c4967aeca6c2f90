package mongostore

import (
	"testing"

	"brm-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDocumentRoundTrip(t *testing.T) {
	var response models.AssessmentResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "r1",
		"assessmentId": "as1",
		"status": "In Progress",
		"responses": [
			{"sectionId": "s1", "questionId": "q1", "value": ["a", "b"]},
			{"sectionId": "s1", "questionId": "q2", "value": 3}
		],
		"timeline": [],
		"reviewer": {"name": "Sam", "level": 2},
		"createdAt": "2024-01-01T00:00:00.000Z"
	}`), &response))

	document, err := toDocument(response)
	require.NoError(t, err)
	assert.Equal(t, "r1", documentFields(document)["_id"])
	assert.NotContains(t, documentFields(document), "id")

	raw, err := bson.Marshal(document)
	require.NoError(t, err)
	decoded, err := fromDocument[models.AssessmentResponse](raw)
	require.NoError(t, err)

	assert.Equal(t, "r1", decoded.ID)
	assert.Equal(t, "as1", decoded.AssessmentID)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", decoded.CreatedAt)
	assert.Equal(t, []interface{}{"a", "b"}, decoded.Responses[0].Value)
	assert.EqualValues(t, 3, decoded.Responses[1].Value)
	assert.JSONEq(t, `{"name":"Sam","level":2}`, string(decoded.Extra["reviewer"]))
}

func TestDocumentKeepsMistypedFields(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: "a1"},
		{Key: "Name", Value: "Acme"},
		{Key: "Phone", Value: int32(5551234)},
	})
	require.NoError(t, err)

	account, err := fromDocument[models.Account](raw)
	require.NoError(t, err)
	assert.Equal(t, "Acme", account.Name)
	assert.Empty(t, account.Phone)

	document, err := toDocument(account)
	require.NoError(t, err)
	assert.EqualValues(t, 5551234, documentFields(document)["Phone"])
}

func documentFields(document bson.D) bson.M {
	fields := bson.M{}
	for _, element := range document {
		fields[element.Key] = element.Value
	}
	return fields
}
