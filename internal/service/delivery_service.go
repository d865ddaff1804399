package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"uniformes/internal/catalog"
	"uniformes/internal/feed"
	"uniformes/internal/form"
	"uniformes/internal/model"
	"uniformes/internal/repository"
	ws "uniformes/internal/websocket"
	"uniformes/pkg/backoff"

	"github.com/google/uuid"
)

// DeliveryEvent is the websocket payload broadcast after each submission
type DeliveryEvent struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// DeliveryService runs the validation and submission pipeline
type DeliveryService interface {
	Submit(ctx context.Context, userID string, draft *form.Draft) (*model.Delivery, error)
}

type deliveryService struct {
	repo   repository.DeliveryRepository
	broker *feed.Broker
	hub    *ws.Hub

	maxAttempts int
	baseDelay   time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDeliveryService returns a DeliveryService with the default retry policy
func NewDeliveryService(repo repository.DeliveryRepository, broker *feed.Broker, hub *ws.Hub) DeliveryService {
	return &deliveryService{
		repo:        repo,
		broker:      broker,
		hub:         hub,
		maxAttempts: backoff.DefaultMaxAttempts,
		baseDelay:   backoff.DefaultBaseDelay,
		inFlight:    make(map[string]struct{}),
	}
}

// Submit validates the draft, persists exactly one record on success and
// publishes the refreshed snapshot. The draft itself is never mutated, so a
// failed submission leaves the user's input intact for correction.
func (s *deliveryService) Submit(ctx context.Context, userID string, draft *form.Draft) (*model.Delivery, error) {
	// Per-user mutual exclusion, not just a disabled submit button
	if err := s.acquire(userID); err != nil {
		return nil, err
	}
	defer s.release(userID)

	lineItems, verr := buildLineItems(draft)
	if verr != nil {
		return nil, verr
	}

	requiresPhoto := draft.RequiresPhoto()
	if requiresPhoto && len(draft.Photo) == 0 {
		return nil, &ValidationError{Kind: MissingPhoto}
	}

	var photo *string
	if len(draft.Photo) > 0 {
		encoded, err := encodePhoto(draft.Photo)
		if err != nil {
			return nil, err
		}
		photo = &encoded
	}

	damageNotes := ""
	if requiresPhoto {
		damageNotes = catalog.DamageNotesEvidence
	}

	record := &model.Delivery{
		ID:           uuid.New(),
		UserID:       userID,
		EmployeeName: draft.EmployeeName,
		Area:         draft.Area,
		Reason:       draft.ReasonLabel(),
		ReasonKey:    draft.ReasonKey,
		Items:        lineItems,
		DamageNotes:  damageNotes,
		Photo:        photo,
		Timestamp:    time.Now().UTC(),
	}

	err := backoff.Retry(ctx, s.maxAttempts, s.baseDelay, func() error {
		return s.repo.Create(ctx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.publishSnapshot(ctx, record)
	return record, nil
}

// buildLineItems runs the ordered field and per-item checks, walking the
// catalog in definition order so the first offending item wins, and returns
// the line items for every entry with quantity > 0.
func buildLineItems(draft *form.Draft) (model.LineItems, *ValidationError) {
	if draft.EmployeeName == "" {
		return nil, &ValidationError{Kind: MissingIdentification}
	}
	if draft.Area == "" {
		return nil, &ValidationError{Kind: MissingArea}
	}

	requiresPhoto := draft.RequiresPhoto()
	var lineItems model.LineItems

	for _, def := range catalog.Items {
		entry, ok := draft.Items[def.Key]
		if !ok || entry.Quantity <= 0 {
			continue
		}

		if !def.FixedSize() && entry.Size == "" {
			return nil, &ValidationError{Kind: MissingSize, ItemLabel: def.Label}
		}
		if def.IsGarment() && entry.Color == "" {
			return nil, &ValidationError{Kind: MissingColor, ItemLabel: def.Label}
		}

		size := entry.Size
		if def.FixedSize() {
			size = catalog.SizeUnica
		}
		color := catalog.ColorNA
		if def.IsGarment() {
			color = entry.Color
		}
		status := draft.ReasonLabel()
		if requiresPhoto {
			status = catalog.StatusDamageReplacement
		}

		lineItems = append(lineItems, model.LineItem{
			Item:     def.Label,
			Size:     size,
			Color:    color,
			Quantity: entry.Quantity,
			Category: def.Category,
			Status:   status,
		})
	}

	if len(lineItems) == 0 {
		return nil, &ValidationError{Kind: NoItemsSelected}
	}
	return lineItems, nil
}

// encodePhoto turns the raw blob into a base64 data URI. Blobs that do not
// sniff as an image are rejected rather than stored.
func encodePhoto(blob []byte) (string, error) {
	mime := http.DetectContentType(blob)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: unexpected content type %s", ErrPhotoEncoding, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *deliveryService) acquire(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return ErrSubmissionInFlight
	}
	s.inFlight[userID] = struct{}{}
	return nil
}

func (s *deliveryService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// publishSnapshot refreshes in-process subscribers with the full record set
// and notifies websocket clients. The record is already persisted at this
// point, so feed failures are logged instead of failing the submission.
func (s *deliveryService) publishSnapshot(ctx context.Context, record *model.Delivery) {
	if s.broker == nil && s.hub == nil {
		return
	}

	snapshot, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		log.Printf("snapshot refresh after submission failed: %v", err)
		return
	}

	if s.broker != nil {
		s.broker.Publish(snapshot)
	}

	if s.hub != nil {
		payload, err := json.Marshal(DeliveryEvent{
			Event: "delivery_created",
			Data: map[string]interface{}{
				"id":             record.ID.String(),
				"area":           record.Area,
				"reason":         record.Reason,
				"timestamp":      record.Timestamp,
				"total_requests": len(snapshot),
			},
		})
		if err == nil {
			s.hub.Broadcast <- payload
		}
	}
}
