package server

import (
	"context"
	"log/slog"
	"time"

	"mecabot/app/config"
	"mecabot/app/service/advisor"
	"mecabot/app/service/catalog"
	"mecabot/app/service/diag"
	"mecabot/app/service/session"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg        *config.Config
	advisorSvc *advisor.Service
	catalogSvc *catalog.Service
	diagSvc    *diag.Service

	app      *fiber.App
	sessions *sessionManager
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:        do.MustInvoke[*config.Config](di),
		advisorSvc: do.MustInvoke[*advisor.Service](di),
		catalogSvc: do.MustInvoke[*catalog.Service](di),
		diagSvc:    do.MustInvoke[*diag.Service](di),
		sessions:   newSessionManager(),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Post("/api/chat", s.handleChat)
	app.Post("/api/reset", s.handleReset)
	app.Get("/api/health", s.handleHealth)
	app.Get("/api/debug", s.handleDebug)

	s.app = app

	return s, nil
}

func (s *Server) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()

		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("HTTP API listening", "addr", s.cfg.Server.Addr)

	if err := s.app.Listen(s.cfg.Server.Addr); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Reply string       `json:"reply"`
	Debug *diag.Record `json:"debug,omitempty"`
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and message are required",
		})
	}

	entry := s.sessions.get(req.SessionID)

	// One pipeline execution in flight per session.
	entry.turnMu.Lock()
	defer entry.turnMu.Unlock()

	reply, record := s.advisorSvc.Chat(c.Context(), req.SessionID, entry.sess, req.Message)

	return c.JSON(chatResponse{
		Reply: reply,
		Debug: record,
	})
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	var req resetRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	entry := s.sessions.get(req.SessionID)

	entry.turnMu.Lock()
	defer entry.turnMu.Unlock()

	entry.sess.Reset()

	return c.JSON(fiber.Map{
		"reply": session.ResetGreeting,
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"products": s.catalogSvc.Count(),
	})
}

func (s *Server) handleDebug(c *fiber.Ctx) error {
	if !s.cfg.Debug.Enabled {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "diagnostics disabled",
		})
	}

	return c.JSON(s.diagSvc.Recent())
}
