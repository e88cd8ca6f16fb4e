package handler

import (
	"net/http"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	sessions *service.SessionService,
	board *service.BoardService,
	inquiries *service.InquiryService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, sessions, cookieSecure)
	boardHandler := NewBoardHandler(board)
	inquiryHandler := NewInquiryHandler(inquiries)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.Handle("POST /logout", RequireAuth(auth, sessions, http.HandlerFunc(authHandler.HandleLogout)))

	mux.HandleFunc("GET /{$}", boardHandler.HandleListQuestions)
	mux.HandleFunc("GET /questions", boardHandler.HandleListQuestions)
	mux.HandleFunc("POST /questions", boardHandler.HandlePostQuestion)
	mux.HandleFunc("GET /questions/{id}", boardHandler.HandleQuestionDetail)
	mux.HandleFunc("POST /questions/{id}/answers", boardHandler.HandlePostAnswer)
	mux.HandleFunc("GET /search", boardHandler.HandleSearch)

	mux.HandleFunc("POST /contact", inquiryHandler.HandleSubmit)
}
