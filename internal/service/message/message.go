package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/entities"
	"loadboard/internal/service/user"
)

type Message struct {
	repository  Repository
	loadService LoadService
	userService UserService
	bids        BidLedger
	txManager   TxManager
}

func New(repository Repository, loadService LoadService, userService UserService, bids BidLedger, txManager TxManager) *Message {
	return &Message{
		repository:  repository,
		loadService: loadService,
		userService: userService,
		bids:        bids,
		txManager:   txManager,
	}
}

// Send отправляет сообщение в переписку груза. Обе стороны должны быть
// участниками груза, либо одна из них - админом.
func (s *Message) Send(ctx context.Context, actor entities.Principal, loadID, recipientID int64, body string) (*entities.Message, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}
	if recipientID <= 0 {
		return nil, ErrInvalidRecipientID
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	var createdMessage *entities.Message

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		loadEntity, err := s.loadService.GetLoad(ctx, loadID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		recipient, err := s.userService.GetUser(ctx, recipientID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return ErrRecipientNotFound
			}
			return fmt.Errorf("get recipient: %w", err)
		}

		allowed, err := s.conversationAllowed(ctx, actor, loadEntity, recipient)
		if err != nil {
			return err
		}
		if !allowed {
			return ErrNotParticipant
		}

		createdMessage, err = s.repository.Create(ctx, entities.Message{
			LoadID:      loadID,
			SenderID:    actor.UserID,
			RecipientID: recipientID,
			Body:        body,
		})
		if err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	return createdMessage, nil
}

// Thread возвращает переписку груза участнику или админу.
func (s *Message) Thread(ctx context.Context, actor entities.Principal, loadID int64) ([]entities.Message, error) {
	if loadID <= 0 {
		return nil, ErrInvalidLoadID
	}

	loadEntity, err := s.loadService.GetLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}

	if !actor.IsAdmin() {
		participant, err := s.isParticipant(ctx, loadEntity, actor.UserID)
		if err != nil {
			return nil, err
		}
		if !participant {
			return nil, ErrNotParticipant
		}
	}

	messages, err := s.repository.ListByLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (s *Message) conversationAllowed(ctx context.Context, actor entities.Principal, loadEntity *entities.Load, recipient *entities.User) (bool, error) {
	if actor.IsAdmin() || recipient.Role == entities.RoleAdmin {
		return true, nil
	}

	senderParticipant, err := s.isParticipant(ctx, loadEntity, actor.UserID)
	if err != nil {
		return false, err
	}

	recipientParticipant, err := s.isParticipant(ctx, loadEntity, recipient.ID)
	if err != nil {
		return false, err
	}

	return senderParticipant && recipientParticipant, nil
}

// isParticipant: владелец груза, назначенный перевозчик либо перевозчик
// с активной (pending или accepted) ставкой.
func (s *Message) isParticipant(ctx context.Context, loadEntity *entities.Load, userID int64) (bool, error) {
	if loadEntity.ShipperID == userID {
		return true, nil
	}
	if loadEntity.TruckerID != nil && *loadEntity.TruckerID == userID {
		return true, nil
	}

	hasBid, err := s.bids.HasActiveBid(ctx, loadEntity.ID, userID)
	if err != nil {
		return false, fmt.Errorf("check active bid: %w", err)
	}

	return hasBid, nil
}
