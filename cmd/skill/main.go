package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"bitbucket.org/sotavant/ikettle-skill/internal/config"
	"bitbucket.org/sotavant/ikettle-skill/internal/logger"
	"bitbucket.org/sotavant/ikettle-skill/internal/queue"
	"bitbucket.org/sotavant/ikettle-skill/internal/skill"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	if err := run(cfg); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				if err := cw.Close(); err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				ow.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	}
}

func run(cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	sink, err := queue.FromConfig(context.Background(), cfg)
	if err != nil {
		return err
	}

	appInstance := newApp(skill.NewRouter(skill.Config{ApplicationID: cfg.ApplicationID}, sink))

	logger.Log.Info("Running server",
		zap.String("address", cfg.RunAddr),
		zap.Bool("dry_run", cfg.DryRun),
	)

	return http.ListenAndServe(cfg.RunAddr, logger.RequestLogger(gzipMiddleware(appInstance.webhook)))
}
