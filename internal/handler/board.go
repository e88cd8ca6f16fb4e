package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

// BoardHandler handles question listing, posting, detail, answers, and search.
type BoardHandler struct {
	board *service.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(board *service.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// HandleListQuestions returns all questions in posting order.
// GET / and GET /questions
func (h *BoardHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.board.Questions(r.Context())
	if err != nil {
		slog.Error("list questions", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": toQuestionDTOs(questions),
	})
}

// HandlePostQuestion processes the question form.
// POST /questions with fields author, detail. Redirects to /.
func (h *BoardHandler) HandlePostQuestion(w http.ResponseWriter, r *http.Request) {
	author := r.FormValue("author")
	detail := r.FormValue("detail")

	if _, err := h.board.PostQuestion(r.Context(), author, detail); err != nil {
		slog.Error("post question", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleQuestionDetail returns one question and all of its answers.
// GET /questions/{id}
func (h *BoardHandler) HandleQuestionDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found.")
		return
	}

	question, err := h.board.Question(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Question not found.")
			return
		}
		slog.Error("get question", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	answers, err := h.board.Answers(r.Context(), id)
	if err != nil {
		slog.Error("list answers", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"question": toQuestionDTO(*question),
		"answers":  toAnswerDTOs(answers),
	})
}

// HandlePostAnswer processes the answer form for one question.
// POST /questions/{id}/answers with fields author, detail. Redirects to /.
func (h *BoardHandler) HandlePostAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found.")
		return
	}

	author := r.FormValue("author")
	detail := r.FormValue("detail")

	if _, err := h.board.PostAnswer(r.Context(), author, detail, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			writeError(w, http.StatusNotFound, "Question not found.")
			return
		}
		slog.Error("post answer", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSearch returns the questions matching the query substring. A blank
// query returns the full list, same as HandleListQuestions.
// GET /search?query=...
func (h *BoardHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	questions, err := h.board.Search(r.Context(), query)
	if err != nil {
		slog.Error("search questions", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": toQuestionDTOs(questions),
	})
}
