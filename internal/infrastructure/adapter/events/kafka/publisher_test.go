package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	occurredAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := service.LedgerEvent{
		Type:       service.EventPaymentCredited,
		UserID:     "user-1",
		PaymentID:  "pi_1",
		Amount:     10000,
		Credits:    10001,
		Balance:    11001,
		OccurredAt: occurredAt,
	}

	t.Run("should send the event as json", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewSaramaConfig())
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
			var decoded map[string]any
			if err := json.Unmarshal(value, &decoded); err != nil {
				return err
			}
			if decoded["type"] != service.EventPaymentCredited || decoded["paymentId"] != "pi_1" {
				return errors.New("unexpected event payload")
			}
			if decoded["balance"] != float64(11001) {
				return errors.New("unexpected balance")
			}
			return nil
		})

		publisher := NewPublisherWithProducer(producer, "", logger.NewNoopLogger())
		require.NoError(t, publisher.Publish(context.Background(), event))
		assert.Equal(t, defaultTopic, publisher.topic)
		require.NoError(t, publisher.Close())
	})

	t.Run("should return send failures", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewSaramaConfig())
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		publisher := NewPublisherWithProducer(producer, "ledger", logger.NewNoopLogger())
		err := publisher.Publish(context.Background(), event)

		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, publisher.Close())
	})

	t.Run("should not send on a canceled context", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, NewSaramaConfig())
		publisher := NewPublisherWithProducer(producer, "ledger", logger.NewNoopLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, publisher.Publish(ctx, event), context.Canceled)
		require.NoError(t, publisher.Close())
	})
}

func TestNewPublisherRequiresBrokers(t *testing.T) {
	_, err := NewPublisher(context.Background(), Config{}, nil, logger.NewNoopLogger())
	assert.Error(t, err)
}

func TestNewSaramaConfig(t *testing.T) {
	config := NewSaramaConfig()

	assert.True(t, config.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.NoError(t, config.Validate())
}
