package events

import (
	"github.com/IBM/sarama"
)

// NewSaramaConfig создает конфигурацию Sarama для продюсера событий
func NewSaramaConfig() *sarama.Config {
	saramaConfig := sarama.NewConfig()

	// Версия Kafka
	saramaConfig.Version = sarama.V3_3_0_0

	// Настройки продюсера
	saramaConfig.Producer.MaxMessageBytes = 1000000
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Flush.MaxMessages = 100
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true

	return saramaConfig
}
