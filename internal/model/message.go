package model

type MessageID string
type RequestID string

// DeletedText replaces the text of a soft-deleted message.
const DeletedText = "[DELETED]"
