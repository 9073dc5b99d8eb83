package skill

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/sotavant/ikettle-skill/internal/command"
	"bitbucket.org/sotavant/ikettle-skill/internal/logger"
	"bitbucket.org/sotavant/ikettle-skill/internal/models"
	"bitbucket.org/sotavant/ikettle-skill/internal/speech"
	"go.uber.org/zap"
)

var (
	ErrEmptyRequest            = errors.New("empty request")
	ErrAuthorization           = errors.New("invalid application id")
	ErrUnrecognizedRequestKind = errors.New("unrecognized request type")
)

type Config struct {
	ApplicationID string
}

type Router struct {
	cfg  Config
	sink command.Sink
}

func NewRouter(cfg Config, sink command.Sink) *Router {
	return &Router{cfg: cfg, sink: sink}
}

// Route handles one platform request. A nil response with a nil error means
// the request is acknowledged without speech.
func (rt *Router) Route(ctx context.Context, req *models.Request) (*models.Response, error) {
	if req == nil {
		return nil, ErrEmptyRequest
	}

	appID := req.Session.Application.ApplicationID
	if appID != rt.cfg.ApplicationID {
		logger.Log.Debug("got request for another application", zap.String("application_id", appID))
		return nil, ErrAuthorization
	}

	log := logger.Log.With(
		zap.String("request_id", req.Request.RequestID),
		zap.String("session_id", req.Session.SessionID),
	)

	if !req.Request.Type.Known() {
		log.Debug("unsupported request type", zap.String("type", string(req.Request.Type)))
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedRequestKind, req.Request.Type)
	}

	if req.Session.New {
		log.Info("session started")
	}

	switch req.Request.Type {
	case models.TypeLaunchRequest:
		log.Debug("launch")
		return speech.BuildResponse(nil, speech.Welcome()), nil

	case models.TypeIntentRequest:
		return rt.onIntent(ctx, log, req.Request.IntentName())

	default: // models.TypeSessionEndedRequest
		log.Info("session ended", zap.String("reason", req.Request.Reason))
		return nil, nil
	}
}

func (rt *Router) onIntent(ctx context.Context, log *zap.Logger, name string) (*models.Response, error) {
	log = log.With(zap.String("intent", name))

	sent, err := command.Dispatch(ctx, rt.sink, name)
	if err != nil {
		log.Warn("intent failed", zap.Int("sent", len(sent)), zap.Error(err))
		return nil, err
	}

	log.Info("intent dispatched", zap.Int("sent", len(sent)))
	return speech.BuildResponse(nil, speech.BuildEmptyResponse(name)), nil
}
