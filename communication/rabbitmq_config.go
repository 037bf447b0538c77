package communication

const (
	defaultContentType = "application/json"
	defaultRoutingKey  = "reports"
)

// PublisherConfig contains everything needed to publish the reports in RabbitMQ
type PublisherConfig struct {
	Enabled          bool                      `yaml:"enabled"`
	URL              string                    `yaml:"url"`
	Exchange         ExchangeDeclarationConfig `yaml:"exchange"`
	PublishingConfig PublishingConfig          `yaml:"publishing_config"`
	TimeoutSeconds   int                       `yaml:"timeout_seconds"`
}

// ExchangeDeclarationConfig contains the parameters to declare a RabbitMQ exchange
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ exchange
type PublishingConfig struct {
	Exchange    string `yaml:"exchange"`
	RoutingKey  string `yaml:"routing_key"`
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
	Persistent  bool   `yaml:"persistent"`
}

// FillDefaults publishes in the declared exchange unless told otherwise
func (pc *PublisherConfig) FillDefaults() {
	if pc.PublishingConfig.Exchange == "" {
		pc.PublishingConfig.Exchange = pc.Exchange.Name
	}
	if pc.PublishingConfig.RoutingKey == "" {
		pc.PublishingConfig.RoutingKey = defaultRoutingKey
	}
	if pc.PublishingConfig.ContentType == "" {
		pc.PublishingConfig.ContentType = defaultContentType
	}
	if pc.TimeoutSeconds <= 0 {
		pc.TimeoutSeconds = 5
	}
}
