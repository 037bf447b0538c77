package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bikeshare/domain/business/queryresponse"

	log "github.com/sirupsen/logrus"
)

// messageBroker is the part of RabbitMQ the ReportPublisher needs
type messageBroker interface {
	DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error
	PublishReport(ctx context.Context, publishingConfig PublishingConfig, reportID string, body []byte) error
	KillBadBunny() error
}

// ReportPublisher sends the report of each round to a RabbitMQ exchange
type ReportPublisher struct {
	broker messageBroker
	config PublisherConfig
}

// NewReportPublisher connects to RabbitMQ and declares the output exchange
func NewReportPublisher(publisherConfig PublisherConfig) (*ReportPublisher, error) {
	rabbitMQ, err := NewRabbitMQ(publisherConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	publisher, err := newReportPublisher(rabbitMQ, publisherConfig)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return publisher, nil
}

func newReportPublisher(broker messageBroker, publisherConfig PublisherConfig) (*ReportPublisher, error) {
	publisherConfig.FillDefaults()
	if publisherConfig.Exchange.Name != "" {
		err := broker.DeclareExchanges([]ExchangeDeclarationConfig{publisherConfig.Exchange})
		if err != nil {
			return nil, err
		}
		log.Infof("[publisher: rabbitmq][exchange: %s][status: OK] exchange declared correctly!", publisherConfig.Exchange.Name)
	}

	return &ReportPublisher{
		broker: broker,
		config: publisherConfig,
	}, nil
}

// Publish sends queryResponse as JSON
func (rp *ReportPublisher) Publish(ctx context.Context, queryResponse *queryresponse.QueryResponse) error {
	queryResponseBytes, err := json.Marshal(queryResponse)
	if err != nil {
		return fmt.Errorf("error marshalling query response: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(rp.config.TimeoutSeconds)*time.Second)
	defer cancel()

	err = rp.broker.PublishReport(ctx, rp.config.PublishingConfig, queryResponse.GetQueryID(), queryResponseBytes)
	if err != nil {
		return fmt.Errorf("error publishing query response %s: %w", queryResponse.GetQueryID(), err)
	}

	log.Debugf("[publisher: rabbitmq][query: %s][status: OK] report published", queryResponse.GetQueryID())
	return nil
}

func (rp *ReportPublisher) Close() error {
	return rp.broker.KillBadBunny()
}
