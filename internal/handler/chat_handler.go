package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	"corp-portal-be/internal/dto"
	"corp-portal-be/internal/entity"
	"corp-portal-be/internal/pkg/logger"
	"corp-portal-be/internal/service"
	"corp-portal-be/internal/websocket"
)

// ChatHandler owns the chat websocket endpoint. Each connection runs a small
// state machine: it must join a department room before it may send, and a
// failed join terminates the connection while a failed send does not.
type ChatHandler struct {
	hub         *websocket.Hub
	chatService service.IChatService
	log         logger.ILogger
}

func NewChatHandler(hub *websocket.Hub, chatService service.IChatService, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		hub:         hub,
		chatService: chatService,
		log:         log,
	}
}

func (h *ChatHandler) RegisterRoutes(router fiber.Router) {
	router.Use("/ws", func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", fiberws.New(h.serve))
}

func serverEvent(event string, data interface{}) []byte {
	payload, _ := json.Marshal(dto.ChatServerEvent{Event: event, Data: data})
	return payload
}

func toMessagePayload(msg *entity.ChatMessage) dto.ChatMessagePayload {
	return dto.ChatMessagePayload{
		Department: msg.Department,
		SenderId:   msg.SenderId,
		SenderName: msg.SenderName,
		Text:       msg.Text,
		Timestamp:  msg.CreatedAt,
	}
}

func (h *ChatHandler) serve(conn *fiberws.Conn) {
	client := websocket.NewClient(conn)
	client.ConfigureRead()
	go client.WritePump()

	defer func() {
		h.hub.Leave(client)
		conn.Close()
	}()

	joined := false
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var event dto.ChatClientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			h.hub.EmitTo(client, serverEvent(dto.ChatEventError, "Malformed event"))
			if !joined {
				return
			}
			continue
		}

		switch event.Event {
		case dto.ChatEventJoin:
			if !h.handleJoin(client, &event) {
				return
			}
			joined = true

		case dto.ChatEventSend:
			if !joined {
				h.hub.EmitTo(client, serverEvent(dto.ChatEventError, "Join a department first"))
				return
			}
			h.handleSend(client, &event)

		default:
			h.hub.EmitTo(client, serverEvent(dto.ChatEventError, "Unknown event"))
			if !joined {
				return
			}
		}
	}
}

// handleJoin reports whether the connection may continue.
func (h *ChatHandler) handleJoin(client *websocket.Client, event *dto.ChatClientEvent) bool {
	claims, history, err := h.chatService.Join(context.Background(), event.Token, event.Department)
	if err != nil {
		h.log.Warn("ChatHandler", "join rejected", map[string]interface{}{
			"department": event.Department,
			"error":      err.Error(),
		})
		h.hub.EmitTo(client, serverEvent(dto.ChatEventError, joinErrorMessage(err)))
		return false
	}

	client.UserId = claims.UserId
	client.EmployeeCode = claims.EmployeeCode
	client.Name = claims.Name

	// The history snapshot above predates room membership, so a message
	// broadcast between the two may appear in neither the snapshot nor the
	// live stream, and one broadcast right after Join lands before the
	// history event. The join boundary is not gap-free.
	h.hub.Join(client, event.Department)

	payloads := make([]dto.ChatMessagePayload, 0, len(history))
	for _, msg := range history {
		payloads = append(payloads, toMessagePayload(msg))
	}
	h.hub.EmitTo(client, serverEvent(dto.ChatEventHistory, payloads))
	h.hub.EmitTo(client, serverEvent(dto.ChatEventJoined, event.Department))
	return true
}

func (h *ChatHandler) handleSend(client *websocket.Client, event *dto.ChatClientEvent) {
	msg, err := h.chatService.SaveMessage(context.Background(), event.Token, event.Department, event.Text, client.UserId)
	if err != nil {
		h.hub.EmitTo(client, serverEvent(dto.ChatEventError, sendErrorMessage(err)))
		return
	}

	// Broadcast only after the store accepted the message.
	h.hub.Broadcast(msg.Department, serverEvent(dto.ChatEventMessage, toMessagePayload(msg)))
}
