package rocketmq

import (
	"Civix/config"
	"Civix/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 初始化事件生产者，未配置时返回 nil（事件投递降级为纯日志）
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Info("rocketmq not configured, event publishing disabled")
		return nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Error("init rocketmq producer", zap.Error(err))
		return nil
	}
	if err := p.Start(); err != nil {
		log.L.Error("start rocketmq producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")
	return p
}

func SendMsg(p rocketmq.Producer, topic string, body []byte) error {
	msg := &primitive.Message{
		Topic: topic,
		Body:  body,
	}
	_, err := p.SendSync(context.Background(), msg)
	return err
}
