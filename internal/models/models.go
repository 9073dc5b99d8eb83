package models

// RequestType is the closed set of request kinds the skill understands.
type RequestType string

const (
	TypeLaunchRequest       RequestType = "LaunchRequest"
	TypeIntentRequest       RequestType = "IntentRequest"
	TypeSessionEndedRequest RequestType = "SessionEndedRequest"
)

const (
	SpeechPlainText = "PlainText"
	CardSimple      = "Simple"
	Version         = "1.0"
)

// Known reports whether t is one of the supported request kinds.
func (t RequestType) Known() bool {
	switch t {
	case TypeLaunchRequest, TypeIntentRequest, TypeSessionEndedRequest:
		return true
	}
	return false
}

// Request is the platform request envelope.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
type Request struct {
	Version string      `json:"version"`
	Session Session     `json:"session"`
	Request RequestBody `json:"request"`
}

type Session struct {
	SessionID   string         `json:"sessionId"`
	New         bool           `json:"new"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type RequestBody struct {
	Type      RequestType `json:"type"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp,omitempty"`
	Locale    string      `json:"locale,omitempty"`
	Intent    *Intent     `json:"intent,omitempty"`
	// Reason is only set on SessionEndedRequest.
	Reason string `json:"reason,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// IntentName returns the intent name or an empty string when the request
// carries no intent.
func (b RequestBody) IntentName() string {
	if b.Intent == nil {
		return ""
	}
	return b.Intent.Name
}

// Response is the envelope returned to the platform.
type Response struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]any    `json:"sessionAttributes"`
	Response          SpeechletResponse `json:"response"`
}

type SpeechletResponse struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             Card         `json:"card"`
	Reprompt         Reprompt     `json:"reprompt"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reprompt keeps its text as a pointer: an absent reprompt is still sent,
// with a null text.
type Reprompt struct {
	OutputSpeech RepromptSpeech `json:"outputSpeech"`
}

type RepromptSpeech struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}
