package events

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/pkg/errors"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

type InteractionProducer struct {
	producer mq.Producer
	node     *snowflake.Node
}

var (
	_ domain.EventProducer = (*InteractionProducer)(nil)
	_ domain.Publisher     = (*InteractionProducer)(nil)
)

func NewInteractionProducer(q mq.MQ, topic string, node *snowflake.Node) (*InteractionProducer, error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, errors.Wrapf(err, "create producer for %s", topic)
	}
	return &InteractionProducer{
		producer: p,
		node:     node,
	}, nil
}

// Produce stamps the event with an id and time if missing and hands it off.
// Messages are keyed by target so a partitioned transport keeps a target on one partition.
func (p *InteractionProducer) Produce(ctx context.Context, evt domain.InteractionEvent) error {
	if evt.ID == 0 {
		evt.ID = p.node.Generate().Int64()
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now()
	}
	data, err := Encode(evt)
	if err != nil {
		return errors.Wrap(err, "encode interaction event")
	}
	return p.Publish(ctx, evt.TargetID, data)
}

// Publish sends an already encoded payload, used when replaying dead letters.
func (p *InteractionProducer) Publish(ctx context.Context, key string, payload []byte) error {
	_, err := p.producer.Produce(ctx, &mq.Message{Key: []byte(key), Value: payload})
	if err != nil {
		return errors.Wrap(err, "produce interaction event")
	}
	return nil
}
