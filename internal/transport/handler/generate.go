package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pep299/vc-briefing/internal/model"
	"github.com/pep299/vc-briefing/internal/service"
	"github.com/pep299/vc-briefing/internal/transport/response"
)

// Generate serves POST /api/generate
type Generate struct {
	generator *service.Generator
}

func NewGenerate(generator *service.Generator) *Generate {
	return &Generate{
		generator: generator,
	}
}

func (h *Generate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if fieldErrors := validateRequest(req); len(fieldErrors) > 0 {
		response.WriteValidationError(w, fieldErrors)
		return
	}

	result, err := h.generator.Generate(r.Context(), req.DeckText, req.VCPersona)
	if err != nil {
		log.Printf("❌ /api/generate error: %v", err)
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func validateRequest(req model.GenerateRequest) map[string][]string {
	fieldErrors := map[string][]string{}
	if strings.TrimSpace(req.DeckText) == "" {
		fieldErrors["deckText"] = append(fieldErrors["deckText"], "deckText required")
	}
	if strings.TrimSpace(req.VCPersona) == "" {
		fieldErrors["vcPersona"] = append(fieldErrors["vcPersona"], "vcPersona required")
	}
	return fieldErrors
}

// writeServiceError maps the service error kinds onto HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *service.ValidationError
		configErr     *service.ConfigurationError
		upstreamErr   *service.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		response.WriteValidationError(w, map[string][]string{
			validationErr.Field: {validationErr.Message},
		})
	case errors.As(err, &configErr):
		response.WriteInternalError(w, configErr.Error())
	case errors.As(err, &upstreamErr):
		response.WriteError(w, http.StatusBadGateway, upstreamErr.Error())
	default:
		response.WriteInternalError(w, "Internal server error")
	}
}
