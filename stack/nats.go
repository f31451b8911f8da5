package stack

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/CPU-commits/Academy_BBackoffice/settings"
	"github.com/nats-io/nats.go"
)

var settingsData = settings.GetSettings()
var natsClient *NatsClient

type NatsClient struct {
	conn *nats.Conn
}

type NatsNestJSRes struct {
	Response interface{} `json:"response"`
	Err      interface{} `json:"err,omitempty"`
}

func (nc *NatsClient) Publish(subject string, data []byte) error {
	return nc.conn.Publish(subject, data)
}

func (nc *NatsClient) PublishEncode(subject string, data interface{}) error {
	message, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return nc.conn.Publish(subject, message)
}

func (nc *NatsClient) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	return nc.conn.Subscribe(subject, cb)
}

func (nc *NatsClient) Request(subject string, data []byte) (*nats.Msg, error) {
	return nc.conn.Request(subject, data, 10*time.Second)
}

// DecodeDataNest unwraps the {id, data} request envelope used by the
// NestJS-side services
func (nc *NatsClient) DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var request map[string]interface{}
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	payload, ok := request["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("nats: request has no data payload")
	}
	return payload, nil
}

func NewNats() *NatsClient {
	if natsClient == nil {
		uri := fmt.Sprintf("nats://%s:4222", settingsData.NATS_HOST)
		conn, err := nats.Connect(
			uri,
			nats.RetryOnFailedConnect(true),
			nats.MaxReconnects(5),
			nats.ReconnectWait(time.Second),
		)
		if err != nil {
			log.Fatalf("NATS connection error: %v", err)
		}
		natsClient = &NatsClient{
			conn: conn,
		}
	}
	return natsClient
}
