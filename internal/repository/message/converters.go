package message

import (
	"loadboard/internal/entities"
)

func ToDomain(m *MessageDB) *entities.Message {
	if m == nil {
		return nil
	}

	return &entities.Message{
		ID:          m.ID,
		LoadID:      m.LoadID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainList(messagesDB []MessageDB) []entities.Message {
	if len(messagesDB) == 0 {
		return []entities.Message{}
	}

	result := make([]entities.Message, len(messagesDB))
	for i, messageDB := range messagesDB {
		result[i] = *ToDomain(&messageDB)
	}
	return result
}
