package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookPayloadMessages(t *testing.T) {
	p := WebhookPayload{Entry: []WebhookEntry{
		{Changes: []WebhookChange{
			{Value: WebhookValue{Messages: []InboundMessage{{ID: "a"}, {ID: "b"}}}},
			{Field: "statuses"},
		}},
		{Changes: []WebhookChange{{Value: WebhookValue{Messages: []InboundMessage{{ID: "c"}}}}}},
	}}

	ids := make([]string, 0)
	for _, m := range p.Messages() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Empty(t, WebhookPayload{}.Messages())
}
