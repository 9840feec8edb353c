// Package bus publishes audit events for account activity. Publishing is
// fire and forget: the request that triggered an event never fails because
// the broker is down.
package bus

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	SubjectTenantRegistered = "cohera.audit.tenant.registered"
	SubjectLogin            = "cohera.audit.auth.login"
	SubjectLogout           = "cohera.audit.auth.logout"
)

type Publisher struct {
	nc *nats.Conn
}

// Event is the wire form of a single audit record.
type Event struct {
	ID     string    `msgpack:"id"`
	OrgID  int64     `msgpack:"org_id"`
	UserID int64     `msgpack:"user_id"`
	At     time.Time `msgpack:"at"`
}

// Connect returns a NATS-backed publisher when NATS_URL is set, and a no-op
// publisher otherwise, so the service runs without a broker.
func Connect() (*Publisher, error) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		log.Println("INFO NATS_URL not set; audit events disabled")
		return &Publisher{}, nil
	}

	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(1 * time.Second),
		nats.ReconnectJitter(500*time.Millisecond, 2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("WARN NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("INFO NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	log.Printf("INFO Connected to NATS at %s", nc.ConnectedUrl())

	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}

func (p *Publisher) TenantRegistered(orgID, userID int64) {
	p.publish(SubjectTenantRegistered, orgID, userID)
}

func (p *Publisher) LoginSucceeded(orgID, userID int64) {
	p.publish(SubjectLogin, orgID, userID)
}

func (p *Publisher) LoggedOut(orgID, userID int64) {
	p.publish(SubjectLogout, orgID, userID)
}

func (p *Publisher) publish(subject string, orgID, userID int64) {
	if p == nil || p.nc == nil {
		return
	}

	payload, err := msgpack.Marshal(&Event{
		ID:     uuid.New().String(),
		OrgID:  orgID,
		UserID: userID,
		At:     time.Now().UTC(),
	})
	if err != nil {
		log.Printf("WARN marshal audit event: %v", err)
		return
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		log.Printf("WARN publish %s: %v", subject, err)
	}
}
