package rocketmq

import (
	"Backoffice/config"
	"Backoffice/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

type Producer struct {
	RocketmqProducer rocketmq.Producer
}

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 未配置 nameserver 时返回空 Producer, 发送直接跳过
func InitProducer(cfg *config.RocketMQConfig) (*Producer, func(), error) {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, audit events stay in database only")
		return &Producer{}, func() {}, nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, nil, err
	}
	if err = p.Start(); err != nil {
		return nil, nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown producer", zap.Error(err))
		}
	}
	return &Producer{RocketmqProducer: p}, cleanup, nil
}

func (p *Producer) Enabled() bool {
	return p != nil && p.RocketmqProducer != nil
}

func (p *Producer) SendMsg(ctx context.Context, topic string, key string, body []byte) error {
	if !p.Enabled() {
		return nil
	}
	msg := primitive.NewMessage(topic, body)
	if key != "" {
		msg.WithKeys([]string{key})
	}

	// 发送同步消息
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}
