package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"peliculas-service/internal/logging"
	"peliculas-service/internal/metrics"
	"peliculas-service/internal/model"
)

// Request is the trigger-agnostic input: a body that is either a JSON object
// or a JSON string wrapping one.
type Request struct {
	Body string
}

// Response is the terminal result of one handled request.
type Response struct {
	StatusCode int
	Body       string
}

// Handle runs the create-movie flow: normalize the body, validate required
// fields, validate configuration, generate an id, persist. Every call writes
// exactly one log entry and attempts at most one store write; nothing is
// retried.
func (a *API) Handle(ctx context.Context, req Request) Response {
	body := normalizeBody(req.Body)

	tenantID, ok := body["tenant_id"].(string)
	if !ok || tenantID == "" {
		return a.missingField(body, "tenant_id")
	}
	datos, ok := body["pelicula_datos"]
	if !ok {
		return a.missingField(body, "pelicula_datos")
	}

	// Checked after field validation: field errors take precedence.
	if a.Cfg.TableName == "" {
		a.Logger.Write(logging.Record(logging.TipoError, map[string]any{
			"action":  "env_check",
			"message": "TABLE_NAME not set in environment",
		}))
		return jsonResponse(http.StatusInternalServerError, map[string]any{
			"error": "server configuration error: TABLE_NAME missing",
		})
	}

	movie := model.Movie{
		TenantID: tenantID,
		ID:       uuid.NewString(),
		Datos:    datos,
	}

	storeResp, err := a.Store.Put(ctx, a.Cfg.TableName, movie)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			a.Logger.Write(logging.Record(logging.TipoError, map[string]any{
				"action":        "create_movie",
				"status":        "dynamodb_failed",
				"error_message": err.Error(),
				"pelicula":      movie,
			}))
			return jsonResponse(http.StatusBadGateway, map[string]any{
				"error":   "dynamodb error",
				"details": err.Error(),
			})
		}
		a.Logger.Write(logging.Record(logging.TipoError, map[string]any{
			"action":        "create_movie",
			"status":        "failed_unexpected",
			"error_type":    fmt.Sprintf("%T", err),
			"error_message": err.Error(),
			"pelicula":      movie,
		}))
		return jsonResponse(http.StatusInternalServerError, map[string]any{
			"error":   "internal server error",
			"details": err.Error(),
		})
	}

	a.Logger.Write(logging.Record(logging.TipoInfo, map[string]any{
		"action":            "create_movie",
		"status":            "success",
		"pelicula":          movie,
		"dynamodb_response": storeResp,
	}))
	metrics.MoviesCreated.WithLabelValues(movie.TenantID).Inc()

	return jsonResponse(http.StatusOK, map[string]any{
		"pelicula":          movie,
		"dynamodb_response": storeResp,
	})
}

// normalizeBody parses the raw body into an object. Proxied triggers may wrap
// the JSON object in a JSON string, so a top-level string is parsed once more.
// Anything unparseable, or any non-object result, becomes an empty object so
// validation reports the missing field instead of leaking a parse error.
func normalizeBody(raw string) map[string]any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return map[string]any{}
	}
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return map[string]any{}
		}
	}
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func (a *API) missingField(body map[string]any, field string) Response {
	a.Logger.Write(logging.Record(logging.TipoError, map[string]any{
		"action":        "parse_input",
		"message":       "missing required field in body",
		"missing_field": field,
		"body":          body,
	}))
	return jsonResponse(http.StatusBadRequest, map[string]any{
		"error": fmt.Sprintf("missing required field: %s", field),
	})
}

func jsonResponse(status int, body map[string]any) Response {
	data, err := json.Marshal(body)
	if err != nil {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Body:       `{"error":"internal server error"}`,
		}
	}
	return Response{StatusCode: status, Body: string(data)}
}
