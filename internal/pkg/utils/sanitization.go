package utils

import (
	"strings"

	"brm-service/internal/pkg/dto/requests"
)

func SanitizeUpsertQuestionResponseRequest(input *requests.UpsertQuestionResponse) {
	input.SectionID = strings.TrimSpace(input.SectionID)
	input.QuestionID = strings.TrimSpace(input.QuestionID)
}

// IsAnswered reports whether an answer value counts as given: present, not
// null, and not an empty string or list.
func IsAnswered(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []interface{}:
		return len(v) > 0
	case []string:
		return len(v) > 0
	}
	return true
}
