package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cardev/portfolio/internal/auth"
	"github.com/cardev/portfolio/internal/logger"
	"github.com/cardev/portfolio/internal/store"
)

type AdminHandler struct {
	store  *store.Store
	logger *logger.Log
}

func NewAdminHandler(logStore *store.Store) *AdminHandler {
	return &AdminHandler{
		store:  logStore,
		logger: logger.New(),
	}
}

// GET /api/admin/conversations - List recent logged exchanges
func (ah *AdminHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	exchanges, err := ah.store.Recent(limit)
	if err != nil {
		ah.logger.WithError(err).Error("failed to list conversations")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": exchanges})
}

func RegisterAdminRoutes(r *mux.Router, handler *AdminHandler) {
	r.HandleFunc("/login", auth.AdminLoginHandler).Methods("POST")
	r.HandleFunc("/logout", auth.AdminLogoutHandler).Methods("POST")

	protected := r.PathPrefix("").Subrouter()
	protected.Use(auth.AdminMiddleware)
	protected.HandleFunc("/conversations", handler.Conversations).Methods("GET")
}
