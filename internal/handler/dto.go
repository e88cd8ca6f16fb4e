package handler

import (
	"time"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// QuestionDTO is the JSON representation of a question.
type QuestionDTO struct {
	ID       int64  `json:"id"`
	Author   string `json:"author"`
	Detail   string `json:"detail"`
	PostedAt string `json:"postedAt"`
}

func toQuestionDTO(q domain.Question) QuestionDTO {
	return QuestionDTO{
		ID:       q.ID,
		Author:   q.Author,
		Detail:   q.Detail,
		PostedAt: q.PostedAt.Format(time.RFC3339),
	}
}

func toQuestionDTOs(questions []domain.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i, q := range questions {
		dtos[i] = toQuestionDTO(q)
	}
	return dtos
}

// AnswerDTO is the JSON representation of an answer.
type AnswerDTO struct {
	ID         int64  `json:"id"`
	Author     string `json:"author"`
	Detail     string `json:"detail"`
	PostedAt   string `json:"postedAt"`
	QuestionID int64  `json:"questionId"`
}

func toAnswerDTO(a domain.Answer) AnswerDTO {
	return AnswerDTO{
		ID:         a.ID,
		Author:     a.Author,
		Detail:     a.Detail,
		PostedAt:   a.PostedAt.Format(time.RFC3339),
		QuestionID: a.QuestionID,
	}
}

func toAnswerDTOs(answers []domain.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, len(answers))
	for i, a := range answers {
		dtos[i] = toAnswerDTO(a)
	}
	return dtos
}
