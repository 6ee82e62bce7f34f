package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	event := models.LoadEvent{
		RunID:         "run-1",
		Date:          "2020-01-01",
		BaseCurrency:  "USD",
		DatesInserted: 1,
		FactsInserted: 2,
		LoadedAt:      1700000000,
	}

	t.Run("writes_message_keyed_by_date", func(t *testing.T) {
		writer := NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, []byte("2020-01-01"), msgs[0].Key)

				var got models.LoadEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.Equal(t, event, got)
				return nil
			})

		assert.NoError(t, NewEventPublisher(writer).Publish(ctx, event))
	})

	t.Run("write_error", func(t *testing.T) {
		writer := NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		assert.Error(t, NewEventPublisher(writer).Publish(ctx, event))
	})

	t.Run("nil_writer_is_noop", func(t *testing.T) {
		assert.NoError(t, NewEventPublisher(nil).Publish(ctx, event))
	})
}
