package service

import (
	"context"
	"encoding/json"
	"errors"

	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/internal/pkg/serverutils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the generation job queue. One goroutine, jobs run
// sequentially; the AI stages dominate latency anyway and sequencing keeps
// per-book runs from racing each other.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	generationService IGenerationService
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	generationService IGenerationService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		generationService: generationService,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GenerateQuestionsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal generation job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads would loop forever on Nack
		return
	}

	cs.log.Info("consumer", "Processing question generation", map[string]interface{}{
		"book_id": payload.BookId,
	})

	result, err := cs.generationService.GenerateForBook(ctx, payload.BookId)
	if err != nil {
		var appErr *serverutils.AppError
		if errors.As(err, &appErr) {
			// Pipeline-level failures are recorded in generation_runs;
			// replaying the job would just burn AI budget.
			cs.log.Error("consumer", "Generation run failed", map[string]interface{}{
				"book_id": payload.BookId,
				"code":    appErr.Code,
				"error":   appErr.Error(),
			})
			msg.Ack()
			return
		}
		cs.log.Error("consumer", "Generation failed, will retry", map[string]interface{}{
			"book_id": payload.BookId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "Generation run finished", map[string]interface{}{
		"book_id":         payload.BookId,
		"total_generated": result.TotalGenerated,
	})
	msg.Ack()
}
