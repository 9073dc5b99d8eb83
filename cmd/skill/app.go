package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bitbucket.org/sotavant/ikettle-skill/internal/command"
	"bitbucket.org/sotavant/ikettle-skill/internal/logger"
	"bitbucket.org/sotavant/ikettle-skill/internal/models"
	"bitbucket.org/sotavant/ikettle-skill/internal/skill"
	"go.uber.org/zap"
)

type router interface {
	Route(ctx context.Context, req *models.Request) (*models.Response, error)
}

type app struct {
	router router
}

func newApp(r router) *app {
	return &app{router: r}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp, err := a.router.Route(ctx, &req)
	if err != nil {
		logger.Log.Debug("cannot handle request", zap.Error(err))
		w.WriteHeader(statusFor(err))
		return
	}

	if resp == nil {
		logger.Log.Debug("sending HTTP 200 acknowledgement")
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, skill.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, skill.ErrUnrecognizedRequestKind):
		return http.StatusUnprocessableEntity
	case errors.Is(err, command.ErrUnknownIntent):
		return http.StatusBadRequest
	case errors.Is(err, command.ErrCommandDelivery):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
