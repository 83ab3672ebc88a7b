package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092", "localhost:9093"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
	assert.Empty(t, p.writers)
	assert.Nil(t, p.transport.TLS)
	assert.Nil(t, p.transport.SASL)
}

func TestNewProducer_TLSAndSASL(t *testing.T) {
	p, err := NewProducer(Config{
		Brokers:       []string{"kafka:9093"},
		TLS:           true,
		SASLEnabled:   true,
		SASLMechanism: "SCRAM-SHA-512",
		SASLUsername:  "routing",
		SASLPassword:  "secret",
	})
	require.NoError(t, err)

	assert.NotNil(t, p.transport.TLS)
	require.NotNil(t, p.transport.SASL)
	assert.Equal(t, "SCRAM-SHA-512", p.transport.SASL.Name())
}

func TestNewProducer_UnknownMechanism(t *testing.T) {
	_, err := NewProducer(Config{SASLEnabled: true, SASLMechanism: "GSSAPI"})
	assert.ErrorContains(t, err, "unsupported SASL mechanism")
}

func TestProducer_WriterIsCachedPerTopic(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	require.NoError(t, err)

	w1 := p.writer("bib.routing.validations")
	w2 := p.writer("bib.routing.validations")
	w3 := p.writer("other")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
	assert.Len(t, p.writers, 2)

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}

func TestProducer_PublishNothingIsNoop(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"kafka:9092"}})
	require.NoError(t, err)

	assert.NoError(t, p.Publish(context.Background(), "bib.routing.validations"))
	assert.Empty(t, p.writers)
}
