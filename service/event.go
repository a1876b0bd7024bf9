package service

import (
	"Civix/pkg/log"
	"Civix/pkg/rocketmq"

	mq "github.com/apache/rocketmq-client-go/v2"
	"go.uber.org/zap"
)

// 审核事件主题，下游投递工（短信/邮件）订阅消费
const TopicModerationEvents = "civix_moderation_events"

type IEventPublisher interface {
	Publish(topic string, body []byte) error
}

type EventPublisher struct {
	Producer mq.Producer
}

func NewEventPublisher(p mq.Producer) IEventPublisher {
	return &EventPublisher{Producer: p}
}

// Publish 尽力而为的事件投递，未配置生产者时仅记录日志
func (e *EventPublisher) Publish(topic string, body []byte) error {
	if e.Producer == nil {
		log.L.Debug("event publishing disabled", zap.String("topic", topic))
		return nil
	}
	return rocketmq.SendMsg(e.Producer, topic, body)
}
