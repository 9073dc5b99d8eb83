package command

import (
	"context"
	"errors"
	"fmt"
)

// Command is an instruction for the kettle controller.
type Command string

const (
	Boil     Command = "boil"
	KeepWarm Command = "keepwarm"
	Off      Command = "off"
)

// Message is the queue payload for a single command.
type Message struct {
	Command Command `json:"command"`
}

// Sink delivers commands to the device controller.
type Sink interface {
	Send(ctx context.Context, c Command) error
}

var (
	ErrUnknownIntent   = errors.New("unknown intent")
	ErrCommandDelivery = errors.New("command delivery failed")
)

type UnknownIntentError struct {
	Intent string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent %q", e.Intent)
}

func (e *UnknownIntentError) Is(target error) bool {
	return target == ErrUnknownIntent
}

// DeliveryError reports the command the sink failed on. Commands sent
// before it stay delivered.
type DeliveryError struct {
	Command Command
	Err     error
}

func (e *DeliveryError) Error() string {
	return e.Reason()
}

// Reason is the sink's own failure message.
func (e *DeliveryError) Reason() string {
	if e.Err == nil {
		return ErrCommandDelivery.Error()
	}
	return e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrCommandDelivery
}

var intents = map[string][]Command{
	"BoilIntent":            {Boil},
	"BoilAndKeepWarmIntent": {Boil, KeepWarm},
	"KeepWarmIntent":        {KeepWarm},
	"OffIntent":             {Off},
}

// Resolve maps an intent name to the commands it stands for, in issue order.
func Resolve(intent string) ([]Command, error) {
	cmds, ok := intents[intent]
	if !ok {
		return nil, &UnknownIntentError{Intent: intent}
	}
	return append([]Command(nil), cmds...), nil
}

// Dispatch resolves the intent and hands every command to the sink in order,
// stopping at the first failure. It returns the commands that were delivered.
func Dispatch(ctx context.Context, sink Sink, intent string) ([]Command, error) {
	cmds, err := Resolve(intent)
	if err != nil {
		return nil, err
	}

	sent := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if err := sink.Send(ctx, c); err != nil {
			return sent, &DeliveryError{Command: c, Err: err}
		}
		sent = append(sent, c)
	}
	return sent, nil
}
