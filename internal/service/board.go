package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// BoardService holds the question-and-answer content: posting, listing,
// detail lookup, and keyword search.
type BoardService struct {
	questions domain.QuestionRepository
	answers   domain.AnswerRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(questions domain.QuestionRepository, answers domain.AnswerRepository) *BoardService {
	return &BoardService{questions: questions, answers: answers}
}

// PostQuestion stores a new question. Detail may be the empty string; the
// repository assigns the posting timestamp.
func (s *BoardService) PostQuestion(ctx context.Context, author, detail string) (*domain.Question, error) {
	question := &domain.Question{
		Author: author,
		Detail: detail,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// PostAnswer stores an answer to an existing question. A question id that
// references no question fails with domain.ErrQuestionNotFound. The lookup
// here is advisory; the repository's foreign key constraint has the final
// say even if the question vanished between the two calls.
func (s *BoardService) PostAnswer(ctx context.Context, author, detail string, questionID int64) (*domain.Answer, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	answer := &domain.Answer{
		Author:     author,
		Detail:     detail,
		QuestionID: questionID,
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return answer, nil
}

// Questions lists all questions in posting order.
func (s *BoardService) Questions(ctx context.Context) ([]domain.Question, error) {
	return s.questions.List(ctx)
}

// Question returns a single question, or domain.ErrNotFound when absent.
func (s *BoardService) Question(ctx context.Context, id int64) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

// Answers lists all answers to the given question in posting order.
func (s *BoardService) Answers(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID)
}

// Search returns the questions whose detail contains query as a
// case-sensitive substring. A query that trims to empty is the explicit
// no-filter branch: the full question list comes back unchanged.
func (s *BoardService) Search(ctx context.Context, query string) ([]domain.Question, error) {
	if strings.TrimSpace(query) == "" {
		return s.questions.List(ctx)
	}
	return s.questions.SearchByDetail(ctx, query)
}
