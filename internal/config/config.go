package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

type Config struct {
	RunAddr        string
	LogLevel       string
	ApplicationID  string
	QueueURL       string
	Region         string
	Endpoint       string
	MessageGroupID string
	DryRun         bool
}

// Load reads flags from args, then lets environment variables override them.
// Variables from the env file are only applied when not already set.
func Load(args []string) (*Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("skill", flag.ContinueOnError)
	fs.StringVarP(&cfg.RunAddr, "addr", "a", ":8080", "address and port")
	fs.StringVarP(&cfg.LogLevel, "log", "l", "info", "log level")
	fs.StringVar(&cfg.ApplicationID, "app-id", "", "expected skill application id")
	fs.StringVarP(&cfg.QueueURL, "queue", "q", "", "command queue url")
	fs.StringVarP(&cfg.Region, "region", "r", "", "queue region")
	fs.StringVar(&cfg.Endpoint, "endpoint", "", "queue endpoint override")
	fs.StringVar(&cfg.MessageGroupID, "group", "", "message group id for fifo queues")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "log commands instead of sending them")
	fs.StringVarP(&envFile, "env", "e", ".env", "env file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// The default env file is optional, an explicit one is not.
	if err := godotenv.Load(envFile); err != nil {
		if fs.Changed("env") || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	override(&cfg.RunAddr, "RUN_ADDR")
	override(&cfg.LogLevel, "LOG_LEVEL")
	override(&cfg.ApplicationID, "SKILL_APPLICATION_ID")
	override(&cfg.QueueURL, "COMMAND_QUEUE_URL")
	override(&cfg.Region, "AWS_REGION")
	override(&cfg.Endpoint, "SQS_ENDPOINT")
	override(&cfg.MessageGroupID, "MESSAGE_GROUP_ID")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	if c.ApplicationID == "" {
		return errors.New("application id is required")
	}
	if c.DryRun {
		return nil
	}
	if c.QueueURL == "" {
		return errors.New("command queue url is required")
	}
	if c.Region == "" {
		return errors.New("queue region is required")
	}
	return nil
}
