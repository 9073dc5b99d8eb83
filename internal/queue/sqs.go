package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bitbucket.org/sotavant/ikettle-skill/internal/command"
	"bitbucket.org/sotavant/ikettle-skill/internal/config"
	"bitbucket.org/sotavant/ikettle-skill/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultGroupID = "kettle"

// sendMessageAPI is the part of the SQS client the sink needs.
type sendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type Options struct {
	QueueURL string
	Region   string
	// Endpoint overrides the SQS endpoint, e.g. for a local emulator.
	Endpoint string
	// GroupID is used for FIFO queues only.
	GroupID string
}

// SQSSink puts every command on an SQS queue as {"command": "<name>"}.
type SQSSink struct {
	client   sendMessageAPI
	queueURL string
	groupID  string
	fifo     bool
}

// New builds a sink backed by the default AWS credential chain.
func New(ctx context.Context, opts Options) (*SQSSink, error) {
	if opts.QueueURL == "" {
		return nil, errors.New("queue url is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return newSQSSink(client, opts), nil
}

func newSQSSink(client sendMessageAPI, opts Options) *SQSSink {
	groupID := opts.GroupID
	if groupID == "" {
		groupID = defaultGroupID
	}
	return &SQSSink{
		client:   client,
		queueURL: opts.QueueURL,
		groupID:  groupID,
		fifo:     strings.HasSuffix(opts.QueueURL, ".fifo"),
	}
}

func (s *SQSSink) Send(ctx context.Context, c command.Command) error {
	body, err := json.Marshal(command.Message{Command: c})
	if err != nil {
		return err
	}

	in := &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if s.fifo {
		in.MessageGroupId = aws.String(s.groupID)
		in.MessageDeduplicationId = aws.String(uuid.NewString())
	}

	out, err := s.client.SendMessage(ctx, in)
	if err != nil {
		logger.Log.Debug("cannot send command", zap.String("command", string(c)), zap.Error(err))
		return fmt.Errorf("send %s: %w", c, err)
	}

	logger.Log.Debug("command sent",
		zap.String("command", string(c)),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

// LogSink only logs the commands it receives.
type LogSink struct{}

func (LogSink) Send(_ context.Context, c command.Command) error {
	logger.Log.Info("dry run, command not sent", zap.String("command", string(c)))
	return nil
}

// FromConfig returns a LogSink in dry-run mode and an SQSSink otherwise.
func FromConfig(ctx context.Context, cfg *config.Config) (command.Sink, error) {
	if cfg.DryRun {
		return LogSink{}, nil
	}
	return New(ctx, Options{
		QueueURL: cfg.QueueURL,
		Region:   cfg.Region,
		Endpoint: cfg.Endpoint,
		GroupID:  cfg.MessageGroupID,
	})
}
