// Package api serves a fitted tokenizer over HTTP. The tokenizer is
// immutable after load, so handlers share it without locking.
package api

import (
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/chartok/internal/tokenizer"
)

type Server struct {
	codec tokenizer.Codec
}

func NewServer(codec tokenizer.Codec) *Server {
	return &Server{codec: codec}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/encode", s.handleEncode)
	e.POST("/v1/decode", s.handleDecode)
	e.GET("/v1/vocab", s.handleVocab)
	e.GET("/healthz", s.handleHealth)
}

func (s *Server) handleEncode(c *echo.Context) error {
	req, err := decodeJSON[EncodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "parse encode request: "+err.Error())
	}
	ids, err := s.codec.Encode(req.Text, req.Strict)
	if err != nil {
		return writeTokenizerError(c, err)
	}
	return c.JSON(http.StatusOK, EncodeResponse{
		ID:    newRequestID("enc"),
		IDs:   ids,
		Count: len(ids),
	})
}

func (s *Server) handleDecode(c *echo.Context) error {
	req, err := decodeJSON[DecodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "parse decode request: "+err.Error())
	}
	skipSpecials := true
	if req.SkipSpecials != nil {
		skipSpecials = *req.SkipSpecials
	}
	text, err := s.codec.Decode(req.IDs, skipSpecials)
	if err != nil {
		return writeTokenizerError(c, err)
	}
	return c.JSON(http.StatusOK, DecodeResponse{
		ID:   newRequestID("dec"),
		Text: text,
	})
}

func (s *Server) handleVocab(c *echo.Context) error {
	size, err := s.codec.VocabSize()
	if err != nil {
		return writeTokenizerError(c, err)
	}
	resp := VocabResponse{
		Version: tokenizer.FormatVersion,
		Size:    size,
	}
	if pad, ok := s.codec.PadID(); ok {
		resp.PadID = &pad
	}
	if unk, ok := s.codec.UnkID(); ok {
		resp.UnkID = &unk
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ErrorBody{Message: msg, Type: errType},
	})
}

// writeTokenizerError maps the tokenizer error taxonomy to HTTP
// statuses: input the vocabulary cannot represent is unprocessable, an
// unfitted tokenizer is a server misconfiguration.
func writeTokenizerError(c *echo.Context, err error) error {
	switch {
	case errors.Is(err, tokenizer.ErrUnknownCharacter):
		return writeError(c, http.StatusUnprocessableEntity, "unknown_character", err.Error())
	case errors.Is(err, tokenizer.ErrUnknownID):
		return writeError(c, http.StatusUnprocessableEntity, "unknown_id", err.Error())
	case errors.Is(err, tokenizer.ErrNotFitted):
		return writeError(c, http.StatusServiceUnavailable, "not_fitted", err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

func newRequestID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
