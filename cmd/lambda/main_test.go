package main

import (
	"context"
	"testing"

	"bitbucket.org/sotavant/ikettle-skill/internal/command"
	"bitbucket.org/sotavant/ikettle-skill/internal/command/mock"
	"bitbucket.org/sotavant/ikettle-skill/internal/models"
	"bitbucket.org/sotavant/ikettle-skill/internal/skill"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSink(ctrl)
	s.EXPECT().Send(gomock.Any(), command.Off).Return(nil)

	h := handler(skill.NewRouter(skill.Config{ApplicationID: "app"}, s))

	req := &models.Request{
		Session: models.Session{Application: models.Application{ApplicationID: "app"}},
		Request: models.RequestBody{Type: models.TypeIntentRequest, Intent: &models.Intent{Name: "OffIntent"}},
	}
	resp, err := h(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Response.ShouldEndSession)

	req.Session.Application.ApplicationID = "other"
	resp, err = h(context.Background(), req)
	assert.ErrorIs(t, err, skill.ErrAuthorization)
	assert.Nil(t, resp)
}

func TestHandlerNullPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockSink(ctrl)

	h := handler(skill.NewRouter(skill.Config{ApplicationID: "app"}, s))

	resp, err := h(context.Background(), nil)
	assert.ErrorIs(t, err, skill.ErrEmptyRequest)
	assert.Nil(t, resp)
}
