package dto

import "time"

// Client -> server chat events. A join carries token+department, a send
// additionally carries text. The credential rides on every event because
// each send is authorized independently.
const (
	ChatEventJoin = "join"
	ChatEventSend = "send"

	ChatEventHistory = "history"
	ChatEventMessage = "message"
	ChatEventJoined  = "joined"
	ChatEventError   = "error"
)

type ChatClientEvent struct {
	Event      string `json:"event"`
	Token      string `json:"token"`
	Department string `json:"department"`
	Text       string `json:"text"`
}

type ChatServerEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type ChatMessagePayload struct {
	Department string    `json:"department"`
	SenderId   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}
