package events

import "time"

// Event defines the contract for all portal events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

func NewUserRegistered(employeeCode, department string) Event {
	return newEvent("USER_REGISTERED", map[string]interface{}{
		"employee_code": employeeCode,
		"department":    department,
	})
}

func NewUserLogin(employeeCode string) Event {
	return newEvent("USER_LOGIN", map[string]interface{}{
		"employee_code": employeeCode,
	})
}

func NewNewsPublished(newsId, title string) Event {
	return newEvent("NEWS_PUBLISHED", map[string]interface{}{
		"news_id": newsId,
		"title":   title,
	})
}

func NewDocumentUploaded(documentId, title string) Event {
	return newEvent("DOCUMENT_UPLOADED", map[string]interface{}{
		"document_id": documentId,
		"title":       title,
	})
}

func NewRequestSubmitted(requestId, employeeCode, requestType string) Event {
	return newEvent("REQUEST_SUBMITTED", map[string]interface{}{
		"request_id":    requestId,
		"employee_code": employeeCode,
		"type":          requestType,
	})
}

func NewRequestStatusChanged(requestId, status string) Event {
	return newEvent("REQUEST_STATUS_CHANGED", map[string]interface{}{
		"request_id": requestId,
		"status":     status,
	})
}

func NewProjectCreated(projectId, title string) Event {
	return newEvent("PROJECT_CREATED", map[string]interface{}{
		"project_id": projectId,
		"title":      title,
	})
}
