package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/segmentio/kafka-go"
)

const Topic = "transactions"

func brokers() ([]string, error) {
	// config
	kafkaurl := os.Getenv("KAFKA_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_PORT is not set")
	}
	return []string{kafkaurl + ":" + kafkaport}, nil
}

// Отправка новых транзакций на проверку
type KafkaDispatcher struct {
	writer *kafka.Writer
}

func NewKafkaDispatcher() (*KafkaDispatcher, error) {
	addrs, err := brokers()
	if err != nil {
		return nil, err
	}
	return &KafkaDispatcher{&kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}}, nil
}

func (k *KafkaDispatcher) Dispatch(ctx context.Context, tx model.Transaction) error {
	msg, err := EncodeTransaction(tx)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, msg)
}

func (k *KafkaDispatcher) Close() error {
	return k.writer.Close()
}

// Ключ - id транзакции, все сообщения одной транзакции попадают в одну партицию
func EncodeTransaction(tx model.Transaction) (kafka.Message, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: []byte(tx.ID.String()), Value: body}, nil
}

type KafkaTransactions struct {
	reader *kafka.Reader
}

func GetNewReader(group string) (reader *KafkaTransactions, err error) {
	addrs, err := brokers()
	if err != nil {
		return nil, err
	}
	kafkaconfig := kafka.ReaderConfig{
		Brokers: addrs,
		Topic:   Topic,
		GroupID: group,
	}
	return &KafkaTransactions{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaTransactions) GetNewMessage(ctx context.Context) (tx model.Transaction, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	err = json.Unmarshal(msg.Value, &tx)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("decode message %s: %w", string(msg.Key), err)
	}
	return tx, nil
}

func (k *KafkaTransactions) CloseReader() {
	k.reader.Close()
}
