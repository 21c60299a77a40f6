package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"games-backend/application/commands"
	"games-backend/application/commands/bus"
	"games-backend/application/queries"
	querybus "games-backend/application/queries/bus"
	"games-backend/domain/core/entities"
	"games-backend/pkg/auth"
	"games-backend/pkg/common"
	pkgerrors "games-backend/pkg/errors"
	"games-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GameHandler handles catalog HTTP requests
type GameHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *GameHandler {
	return &GameHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetGame handles GET /games/{gameId}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameId"))
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewInvalidRequestError("missing or invalid gameId path parameter"))
		return
	}

	params, err := parseQueryParams(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetGameQuery{
		ID:       gameID,
		Title:    params.Title,
		Language: params.Language,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	res, ok := result.(*queries.GetGameResult)
	if !ok {
		h.errorHandler.Handle(w, r, pkgerrors.NewInternalError(fmt.Sprintf("unexpected query result %T", result)))
		return
	}

	if res.Translated() {
		common.RespondData(w, http.StatusOK, res.Translation)
		return
	}
	common.RespondData(w, http.StatusOK, res.Games)
}

// UpdateGame handles PUT /games
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var req UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID == nil || req.Title == "" {
		h.errorHandler.Handle(w, r, pkgerrors.NewInvalidRequestError("id and title are required"))
		return
	}
	if violations := utils.Validate(req); len(violations) > 0 {
		h.errorHandler.Handle(w, r, invalidBody(violations))
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.UpdateGameCommand{
		ID:       req.ID,
		Title:    req.Title,
		Patch:    req.Patch(),
		CallerID: auth.CallerID(r.Context()),
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "Game updated successfully", result.(*entities.Game))
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.ID == nil || req.Title == "" {
		h.errorHandler.Handle(w, r, pkgerrors.NewInvalidRequestError("id and title are required"))
		return
	}
	if violations := utils.Validate(req); len(violations) > 0 {
		h.errorHandler.Handle(w, r, invalidBody(violations))
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.CreateGameCommand{
		Game:     req.Game(),
		CallerID: auth.CallerID(r.Context()),
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusCreated, "Game created successfully", result.(*entities.Game))
}

// parseQueryParams binds the query string to GameQueryParams. Undeclared
// parameters and failed rules are reported together as a schema violation.
func parseQueryParams(r *http.Request) (GameQueryParams, error) {
	values := r.URL.Query()
	params := GameQueryParams{
		Title:    values.Get("title"),
		Language: values.Get("language"),
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	violations := utils.UnknownFields(params, keys)
	violations = append(violations, utils.Validate(params)...)
	if len(violations) > 0 {
		return params, pkgerrors.NewSchemaViolationError(utils.SchemaOf(params), violations)
	}

	return params, nil
}

func invalidBody(violations []utils.Violation) error {
	return pkgerrors.NewInvalidRequestError("request body failed validation").
		WithDetail("violations", violations)
}
