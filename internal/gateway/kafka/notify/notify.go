// Package notify публикует доменные события в Kafka.
//
// События партиционируются по parcel_id, чтобы потребители видели
// изменения по одной посылке в порядке их возникновения.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"parcelmatch/internal/entities"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

type Gateway struct {
	producer    producer
	matchTopic  string
	parcelTopic string
}

func New(producer producer, matchTopic, parcelTopic string) *Gateway {
	return &Gateway{
		producer:    producer,
		matchTopic:  matchTopic,
		parcelTopic: parcelTopic,
	}
}

func (g *Gateway) MatchCreated(ctx context.Context, match *entities.Match) error {
	return g.publishMatch(ctx, eventMatchCreated, match)
}

func (g *Gateway) MatchResolved(ctx context.Context, match *entities.Match) error {
	event := eventMatchRejected
	if match.Status == entities.MatchAccepted {
		event = eventMatchAccepted
	}
	return g.publishMatch(ctx, event, match)
}

func (g *Gateway) ParcelStatusChanged(ctx context.Context, parcel *entities.Parcel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := parcelEvent{
		Event:      eventParcelStatusChanged,
		ParcelID:   parcel.ID,
		SenderID:   parcel.SenderID,
		Status:     parcel.Status.String(),
		TripID:     parcel.TripID,
		OccurredAt: time.Now().UTC(),
	}

	return g.publish(g.parcelTopic, parcel.ID, eventParcelStatusChanged, payload)
}

func (g *Gateway) publishMatch(ctx context.Context, event string, match *entities.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := matchEvent{
		Event:       event,
		MatchID:     match.ID,
		ParcelID:    match.ParcelID,
		TripID:      match.TripID,
		Score:       match.Score,
		Status:      match.Status.String(),
		TotalAmount: match.Fee.TotalAmount,
		Currency:    match.Fee.Currency,
		OccurredAt:  time.Now().UTC(),
	}

	return g.publish(g.matchTopic, match.ParcelID, event, payload)
}

func (g *Gateway) publish(topic string, parcelID int64, event string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}

	err = g.producer.SendMessage(topic, strconv.FormatInt(parcelID, 10), value)
	if err != nil {
		NotificationsPublishedTotal.WithLabelValues(event, resultError).Inc()
		return fmt.Errorf("publish %s event: %w", event, err)
	}

	NotificationsPublishedTotal.WithLabelValues(event, resultOK).Inc()
	return nil
}
