package models

import "brm-service/internal/pkg/utils"

type SectionProgress struct {
	SectionID string `json:"sectionId"`
	Title     string `json:"title"`
	Answered  int    `json:"answered"`
	Total     int    `json:"total"`
	Complete  bool   `json:"complete"`
}

type ResponseProgress struct {
	ResponseID      string            `json:"responseId"`
	AssessmentID    string            `json:"assessmentId"`
	Status          string            `json:"status"`
	Sections        []SectionProgress `json:"sections"`
	Complete        bool              `json:"complete"`
	MissingRequired []string          `json:"missingRequired"`
}

// ComputeProgress compares the template's questions with the response's
// answers. A section is complete when every one of its questions is answered.
func ComputeProgress(template *Template, response *AssessmentResponse) ResponseProgress {
	progress := ResponseProgress{
		ResponseID:      response.ID,
		AssessmentID:    response.AssessmentID,
		Status:          response.Status,
		Sections:        []SectionProgress{},
		Complete:        true,
		MissingRequired: []string{},
	}
	if template == nil {
		return progress
	}

	for _, section := range template.Sections {
		sectionProgress := SectionProgress{
			SectionID: section.ID,
			Title:     section.Title,
			Total:     len(section.Questions),
		}
		for _, question := range section.Questions {
			value, _ := response.Answer(section.ID, question.ID)
			if utils.IsAnswered(value) {
				sectionProgress.Answered++
				continue
			}
			if question.Required {
				progress.MissingRequired = append(progress.MissingRequired, question.ID)
			}
		}
		sectionProgress.Complete = sectionProgress.Answered == sectionProgress.Total
		if !sectionProgress.Complete {
			progress.Complete = false
		}
		progress.Sections = append(progress.Sections, sectionProgress)
	}
	return progress
}
