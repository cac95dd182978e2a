package chat

// AssistantReplyTaskType is the queue task that posts the assistant's
// answer once the reply delay has passed.
const AssistantReplyTaskType = "chat:assistant_reply"

// AssistantReplyQueue is the queue assistant replies are scheduled on.
const AssistantReplyQueue = "chat"

// AssistantReply is the task payload. The body is chosen when the user's
// message is dispatched, not when the task runs.
type AssistantReply struct {
	ConversationID ConversationID `json:"conversation_id"`
	Body           string         `json:"body"`
}
