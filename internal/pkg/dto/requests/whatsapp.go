package requests

type WhatsAppMessage struct {
	PhoneNumberID  string `json:"phone_number_id"`
	To             string `json:"to"`
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}
