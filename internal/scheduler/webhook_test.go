package scheduler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/centraldiv/botcore/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func webhookResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

func TestWebhookEffect(t *testing.T) {
	ctx := context.Background()

	t.Run("ApplyPostsToApplyURL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "http://gateway/hooks/grant", req.URL.String())
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			body, _ := io.ReadAll(req.Body)
			assert.JSONEq(t, `{"subject":"user:100"}`, string(body))
			return webhookResponse(http.StatusOK), nil
		})

		effect := NewWebhookEffect(client)
		err := effect.Apply(ctx, "user:100", []byte(`{"apply_url":"http://gateway/hooks/grant","undo_url":"http://gateway/hooks/revoke"}`))
		assert.NoError(t, err)
	})

	t.Run("UndoPostsToUndoURL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "http://gateway/hooks/revoke", req.URL.String())
			return webhookResponse(http.StatusNoContent), nil
		})

		effect := NewWebhookEffect(client)
		err := effect.Undo(ctx, "user:100", []byte(`{"undo_url":"http://gateway/hooks/revoke"}`))
		assert.NoError(t, err)
	})

	t.Run("EmptyURLIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		effect := NewWebhookEffect(client)
		assert.NoError(t, effect.Apply(ctx, "user:100", []byte(`{"undo_url":"http://gateway/hooks/revoke"}`)))
		assert.NoError(t, effect.Undo(ctx, "user:100", []byte(`{"apply_url":"http://gateway/hooks/grant"}`)))
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		client.EXPECT().Do(gomock.Any()).Return(webhookResponse(http.StatusBadGateway), nil)

		effect := NewWebhookEffect(client)
		err := effect.Undo(ctx, "user:100", []byte(`{"undo_url":"http://gateway/hooks/revoke"}`))
		assert.Error(t, err)
	})

	t.Run("TransportError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		client.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		effect := NewWebhookEffect(client)
		err := effect.Apply(ctx, "user:100", []byte(`{"apply_url":"http://gateway/hooks/grant"}`))
		assert.Error(t, err)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := clients.NewMockHTTPClientI(ctrl)

		effect := NewWebhookEffect(client)
		assert.Error(t, effect.Apply(ctx, "user:100", []byte("not json")))
		assert.Error(t, effect.Undo(ctx, "user:100", []byte("not json")))
	})
}
