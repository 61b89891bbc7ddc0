// Package handler provides the greeting service served behind the warmer.
package handler

import (
	"context"
	"fmt"
	"sync"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = "en"

// Request is the input to the greeting service.
type Request struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
	Greeting string `json:"greeting,omitempty"`
}

// Response is the output from the greeting service.
type Response struct {
	Message  string `json:"message,omitempty"`
	Language string `json:"language,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Handler greets people. Its templates are loaded once per environment,
// either by a warm-up ping or by the first request.
type Handler struct {
	once      sync.Once
	templates map[string]string
}

// New creates a Handler.
func New() *Handler {
	return &Handler{}
}

// WarmUp loads the greeting templates.
func (h *Handler) WarmUp(ctx context.Context) error {
	h.load()
	return ctx.Err()
}

// Handle processes a greeting request.
// Validation problems are reported in Response.Error rather than as a failed invocation.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return &Response{Error: err.Error()}, nil
	}

	h.load()

	lang := req.Language
	if lang == "" {
		lang = DefaultLanguage
	}

	greeting := req.Greeting
	if greeting == "" {
		var ok bool
		greeting, ok = h.templates[lang]
		if !ok {
			return &Response{Error: fmt.Sprintf("unsupported language: %s", lang)}, nil
		}
	}

	return &Response{
		Message:  fmt.Sprintf("%s, %s!", greeting, req.Name),
		Language: lang,
	}, nil
}

func (h *Handler) load() {
	h.once.Do(func() {
		h.templates = map[string]string{
			"en": "Hello",
			"es": "Hola",
			"fr": "Bonjour",
			"de": "Hallo",
			"it": "Ciao",
			"pt": "Olá",
			"ca": "Hola",
			"ro": "Salut",
		}
	})
}

// validateRequest checks the request is valid.
func validateRequest(req Request) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Name) > 128 {
		return fmt.Errorf("name must be at most 128 characters")
	}
	return nil
}
