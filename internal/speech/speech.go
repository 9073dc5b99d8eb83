// Package speech builds the speechlet responses returned to the platform.
package speech

import (
	"bitbucket.org/sotavant/ikettle-skill/internal/models"
)

// CardPrefix is prepended to every card title and content.
const CardPrefix = "SessionSpeechlet - "

const (
	welcomeTitle  = "Welcome"
	welcomeText   = "Welcome to iKettle.  You can say things like, boil, keep warm, or turn off."
	welcomePrompt = "You can say things like, boil, keep warm, or turn off."
)

func BuildSpeechletResponse(title, output string, reprompt *string, endSession bool) models.SpeechletResponse {
	return models.SpeechletResponse{
		OutputSpeech: models.OutputSpeech{
			Type: models.SpeechPlainText,
			Text: output,
		},
		Card: models.Card{
			Type:    models.CardSimple,
			Title:   CardPrefix + title,
			Content: CardPrefix + output,
		},
		Reprompt: models.Reprompt{
			OutputSpeech: models.RepromptSpeech{
				Type: models.SpeechPlainText,
				Text: reprompt,
			},
		},
		ShouldEndSession: endSession,
	}
}

// BuildEmptyResponse closes the session without saying anything.
func BuildEmptyResponse(title string) models.SpeechletResponse {
	return BuildSpeechletResponse(title, "", nil, true)
}

// BuildResponse wraps a speechlet response into the protocol envelope.
func BuildResponse(attrs map[string]any, resp models.SpeechletResponse) *models.Response {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &models.Response{
		Version:           models.Version,
		SessionAttributes: attrs,
		Response:          resp,
	}
}

// Welcome lists the supported commands and keeps the session open.
func Welcome() models.SpeechletResponse {
	prompt := welcomePrompt
	return BuildSpeechletResponse(welcomeTitle, welcomeText, &prompt, false)
}
