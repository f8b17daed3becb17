// Package announce publishes schedule run summaries over MQTT so external
// dashboard renderers can refresh without polling the API.
package announce

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/kilianp07/planboard/core/metrics"
	"github.com/kilianp07/planboard/infra/logger"
)

// Config defines the connection parameters for the announcer.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "planboard-announcer"
	}
	if c.Topic == "" {
		c.Topic = "planboard/schedule/run"
	}
}

// Validate checks mandatory fields when the announcer is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("announce broker is required")
	}
	return nil
}

type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Announcer publishes run summaries to a single MQTT topic.
type Announcer struct {
	cli   pahoClient
	topic string
	qos   byte
	log   logger.Logger
}

// New connects to the MQTT broker described by cfg.
func New(cfg Config) (*Announcer, error) {
	log := logger.New("announcer")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Announcer{cli: c, topic: cfg.Topic, qos: cfg.QoS, log: log}, nil
}

// runMessage is the wire form of a published run summary.
type runMessage struct {
	RunID          string    `json:"run_id"`
	TaskCount      int       `json:"task_count"`
	Days           int       `json:"days"`
	OverloadedDays int       `json:"overloaded_days"`
	CapacityHours  float64   `json:"capacity_hours"`
	Time           time.Time `json:"time"`
}

// Publish sends the run summary as JSON. Publishing is fire-and-forget:
// a broker error is logged, not returned to the scheduling path.
func (a *Announcer) Publish(run coremetrics.ScheduleRun) {
	payload, err := json.Marshal(runMessage{
		RunID:          run.RunID,
		TaskCount:      run.TaskCount,
		Days:           run.Days,
		OverloadedDays: run.OverloadedDays,
		CapacityHours:  run.CapacityHours,
		Time:           run.Time,
	})
	if err != nil {
		a.log.Errorf("marshal run: %v", err)
		return
	}
	if token := a.cli.Publish(a.topic, a.qos, false, payload); token.Wait() && token.Error() != nil {
		a.log.Errorf("publish run %s: %v", run.RunID, token.Error())
	}
}

// Close disconnects from the broker.
func (a *Announcer) Close() {
	a.cli.Disconnect(250)
}
