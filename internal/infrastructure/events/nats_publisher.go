// Package events contiene los adaptadores del puerto ports.CategoryEventPublisher.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

var _ ports.CategoryEventPublisher = (*NATSPublisher)(nil)

// NATSPublisher publica eventos de categorías en NATS core, un subject por tipo de evento.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher conecta al servidor NATS. prefix se antepone al tipo (ej. "catalog.categories").
func NewNATSPublisher(url, clientName, prefix string) (*NATSPublisher, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	conn, err := nats.Connect(url, nats.Name(clientName))
	if err != nil {
		return nil, fmt.Errorf("conectar NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, prefix: prefix}, nil
}

// Publish serializa el evento en JSON y lo publica en Subject(prefix, evt.Type).
func (p *NATSPublisher) Publish(ctx context.Context, evt ports.CategoryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	if err := p.conn.Publish(Subject(p.prefix, evt.Type), data); err != nil {
		return fmt.Errorf("publicar en NATS: %w", err)
	}
	return nil
}

// Close vacía los mensajes pendientes y cierra la conexión.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

// Subject arma el subject del evento: "category.created" con prefijo "catalog.categories"
// queda "catalog.categories.created".
func Subject(prefix, eventType string) string {
	action := eventType
	if i := strings.LastIndex(eventType, "."); i >= 0 {
		action = eventType[i+1:]
	}
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return eventType
	}
	return prefix + "." + action
}
