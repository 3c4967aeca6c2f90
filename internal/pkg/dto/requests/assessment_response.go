package requests

type UpsertQuestionResponse struct {
	SectionID  string      `json:"sectionId" validate:"required"`
	QuestionID string      `json:"questionId" validate:"required"`
	Value      interface{} `json:"value"`
}

type UpdateResponseStatus struct {
	Status string `json:"status" validate:"omitempty,response_status"`
}
