// Command lambda serves the skill as an AWS Lambda function.
package main

import (
	"context"
	"os"

	"bitbucket.org/sotavant/ikettle-skill/internal/config"
	"bitbucket.org/sotavant/ikettle-skill/internal/logger"
	"bitbucket.org/sotavant/ikettle-skill/internal/models"
	"bitbucket.org/sotavant/ikettle-skill/internal/queue"
	"bitbucket.org/sotavant/ikettle-skill/internal/skill"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(err)
	}

	sink, err := queue.FromConfig(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("cannot create command queue", zap.Error(err))
	}

	lambda.Start(handler(skill.NewRouter(skill.Config{ApplicationID: cfg.ApplicationID}, sink)))
}

func handler(router *skill.Router) func(context.Context, *models.Request) (*models.Response, error) {
	return func(ctx context.Context, req *models.Request) (*models.Response, error) {
		resp, err := router.Route(ctx, req)
		if err != nil {
			logger.Log.Warn("request failed", zap.Error(err))
			return nil, err
		}
		return resp, nil
	}
}
