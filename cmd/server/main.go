// cmd/server/main.go
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/cardev/portfolio/config"
	"github.com/cardev/portfolio/internal/api"
	"github.com/cardev/portfolio/internal/auth"
	"github.com/cardev/portfolio/internal/llm"
	"github.com/cardev/portfolio/internal/logger"
	"github.com/cardev/portfolio/internal/session"
	"github.com/cardev/portfolio/internal/store"
	"github.com/cardev/portfolio/internal/tts"
	"github.com/cardev/portfolio/internal/ws"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("failed to load config")
		os.Exit(1)
	}

	// Conversation log
	logStore, err := store.New(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Error("failed to open conversation log")
		os.Exit(1)
	}
	defer logStore.Close()

	// Chat provider
	chatClient, err := llm.NewClient(cfg)
	if err != nil {
		log.WithError(err).Error("failed to create chat provider")
		os.Exit(1)
	}

	// Speech provider
	ttsEngine, err := tts.NewEngine(cfg)
	if err != nil {
		log.WithError(err).Error("failed to create tts engine")
		os.Exit(1)
	}

	// Persona: built-in template unless the config points at a file
	persona := session.DefaultPersona()
	if cfg.Persona.TemplatePath != "" {
		persona, err = session.LoadPersona(cfg.Persona.TemplatePath)
		if err != nil {
			log.WithError(err).Error("failed to load persona template")
			os.Exit(1)
		}
	}

	auth.Init(cfg.Auth.SessionSecret, cfg.Auth.AdminPasswordHash)

	hub := ws.NewHub()

	r := mux.NewRouter()

	// Public API routes
	apiRouter := r.PathPrefix("/api").Subrouter()

	chatTimeout := time.Duration(cfg.Chat.Anthropic.Timeout) * time.Second
	if cfg.Chat.Provider == "ollama" {
		chatTimeout = time.Duration(cfg.Chat.Ollama.Timeout) * time.Second
	}
	api.RegisterChatRoutes(apiRouter, api.NewChatHandler(chatClient, logStore, hub, chatTimeout))
	api.RegisterTTSRoutes(apiRouter, api.NewTTSHandler(ttsEngine, time.Duration(cfg.Tts.Timeout)*time.Second))
	api.RegisterPersonaRoutes(apiRouter, api.NewPersonaHandler(
		persona.Text(), cfg.Persona.UserLabel, cfg.Persona.AssistantLabel))

	// Owner-only routes
	adminRouter := apiRouter.PathPrefix("/admin").Subrouter()
	api.RegisterAdminRoutes(adminRouter, api.NewAdminHandler(logStore))

	// WebSocket routes
	ws.RegisterRoutes(r, hub)

	// Static assets and the single page
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static/"))))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./web/templates/index.html")
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	log.Info("portfolio server starting on port " + port)
	log.Info("chat provider: " + cfg.Chat.Provider + ", tts engine: " + ttsEngine.Name())

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
