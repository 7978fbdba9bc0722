package kafka

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"rowsift/internal/record"
	"rowsift/sink"
)

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

// driver publishes each validated record as one JSON-encoded message, keyed
// by the first schema field (the record identifier). A sync producer so a
// broker failure surfaces from Push and aborts the run.
type driver struct {
	cfg Config
	p   sarama.SyncProducer
}

func (d *driver) Configure(c any) error {
	cfg, ok := c.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: want Config, got %T", c)
	}
	if cfg.Topic == "" {
		return errors.New("kafka-sink: topic required")
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
	sc.Producer.Return.Successes = true // required by SyncProducer
	var err error
	d.p, err = sarama.NewSyncProducer(cfg.Brokers, sc)
	return err
}

func (d *driver) Push(rec record.Record) error {
	val, err := json.Marshal(rec.Map())
	if err != nil {
		return fmt.Errorf("kafka-sink: encode: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Value: sarama.ByteEncoder(val),
	}
	if rec.Len() > 0 {
		if s, ok := rec.Values()[0].(string); ok {
			msg.Key = sarama.StringEncoder(s)
		}
	}
	if _, _, err := d.p.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka-sink: %w", err)
	}
	return nil
}

func (d *driver) Close() error {
	if d.p == nil {
		return nil
	}
	err := d.p.Close()
	d.p = nil
	return err
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
