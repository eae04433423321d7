// Package server implements an HTTP front end for calculator sessions.
package server

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zephyrtronium/calculator"
)

// Server is the HTTP API server for calculator sessions.
type Server struct {
	app   *fiber.App
	store *Store
	opts  []calculator.ContextOption
}

// New creates a new API server. Sessions and stateless evaluations use opts.
func New(opts ...calculator.ContextOption) *Server {
	srv := &Server{
		store: NewStore(opts...),
		opts:  opts,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/v1/sessions", srv.createSession)
	app.Get("/v1/sessions", srv.listSessions)
	app.Get("/v1/sessions/:id", srv.getSession)
	app.Post("/v1/sessions/:id/keys", srv.pressKeys)
	app.Delete("/v1/sessions/:id", srv.deleteSession)
	app.Post("/v1/eval", srv.eval)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	log.Printf("calculator server listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

// Store returns the session registry.
func (s *Server) Store() *Store {
	return s.store
}

// --- Session Handlers ---

func (s *Server) createSession(c *fiber.Ctx) error {
	sess := s.store.Create()
	return c.Status(201).JSON(sess.State())
}

func (s *Server) listSessions(c *fiber.Ctx) error {
	sessions := s.store.List()
	items := make([]State, len(sessions))
	for i, sess := range sessions {
		items[i] = sess.State()
	}
	return c.JSON(fiber.Map{
		"sessions": items,
	})
}

func (s *Server) getSession(c *fiber.Ctx) error {
	sess, err := s.store.Get(c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(sess.State())
}

type pressKeysRequest struct {
	Keys []string `json:"keys"`
}

func (s *Server) pressKeys(c *fiber.Ctx) error {
	sess, err := s.store.Get(c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}

	var req pressKeysRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, fmt.Sprintf("invalid request body: %v", err))
	}

	// Parse every key before pressing any so that a bad name changes nothing.
	keys := make([]calculator.Key, len(req.Keys))
	for i, name := range req.Keys {
		k, err := calculator.ParseKey(name)
		if err != nil {
			return invalidArgument(c, err.Error())
		}
		keys[i] = k
	}

	return c.JSON(sess.Press(keys))
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	if err := s.store.Delete(c.Params("id")); err != nil {
		return notFound(c, err)
	}
	return c.JSON(fiber.Map{})
}

// --- Stateless Evaluation ---

type evalRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) eval(c *fiber.Ctx) error {
	var req evalRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Expression == "" {
		return invalidArgument(c, "expression is required")
	}

	v, err := calculator.EvalString(req.Expression, s.opts...)
	if err != nil {
		var be *calculator.BracketError
		if errors.As(err, &be) {
			err = fmt.Errorf("%w: %v", calculator.ErrUnbalancedParens, be)
		}
		return c.Status(422).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    422,
				"message": calculator.Message(err),
				"detail":  err.Error(),
				"kind":    errorKind(err),
			},
		})
	}
	return c.JSON(fiber.Map{
		"expression": req.Expression,
		"result":     calculator.FormatResult(v),
	})
}

// errorKind names the class of an evaluation error for clients.
func errorKind(err error) string {
	switch {
	case errors.Is(err, calculator.ErrUnbalancedParens):
		return "unbalanced_parens"
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "division_by_zero"
	default:
		return "eval_error"
	}
}

// --- Helpers ---

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(404).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    404,
			"message": fmt.Sprintf("%s: %v", c.Params("id"), err),
			"status":  "NOT_FOUND",
		},
	})
}

func invalidArgument(c *fiber.Ctx, msg string) error {
	return c.Status(400).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    400,
			"message": msg,
			"status":  "INVALID_ARGUMENT",
		},
	})
}
