// Package notify publishes appointment status changes for downstream
// consumers (reminder mailers, patient apps).
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"medisync-api/internal/model"
)

type AppointmentEvent struct {
	AppointmentID int64     `json:"appointment_id"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	Confirm       bool      `json:"confirm"`
	At            time.Time `json:"at"`
}

func EventFor(a *model.Appointment, at time.Time) AppointmentEvent {
	return AppointmentEvent{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		DoctorName:    a.DoctorName,
		Confirm:       a.Confirm,
		At:            at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...AppointmentEvent) error
	Close() error
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Kafka struct {
	w MessageWriter
}

func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}}
}

func NewKafkaWithWriter(w MessageWriter) *Kafka {
	return &Kafka{w: w}
}

func (k *Kafka) Publish(ctx context.Context, events ...AppointmentEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		body, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("notify: encode event %d: %w", ev.AppointmentID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(ev.AppointmentID, 10)),
			Value: body,
			Time:  ev.At,
		})
	}
	if err := k.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("notify: write %d events: %w", len(msgs), err)
	}
	return nil
}

func (k *Kafka) Close() error { return k.w.Close() }

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, ...AppointmentEvent) error { return nil }
func (Nop) Close() error                                       { return nil }
