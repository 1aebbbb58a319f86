package model

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
)

// CreateID returns a random 128 bit id rendered in base58.
func CreateID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

func NewUserID() UserID {
	return UserID(CreateID())
}

func NewMessageID() MessageID {
	return MessageID(CreateID())
}

func NewRequestID() RequestID {
	return RequestID(CreateID())
}
