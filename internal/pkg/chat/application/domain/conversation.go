package chat

import (
	"sort"
	"strings"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
)

// Separator joins the two participant ids of a conversation id. Participant
// ids may not contain it, which keeps addressing injective.
const Separator = "_"

const topicPrefix = "chat:conversation:"

var (
	ErrInvalidParticipant  = apperror.New(apperror.ErrValidation, "participant id must be non-empty and must not contain \"_\"")
	ErrInvalidConversation = apperror.New(apperror.ErrValidation, "malformed conversation id")
)

// ConversationID names the one-to-one thread between two participants.
type ConversationID string

// AddressOf derives the conversation id for a pair of participants. The
// result does not depend on argument order and is stable across restarts.
func AddressOf(idA, idB string) (ConversationID, error) {
	if !validParticipant(idA) || !validParticipant(idB) {
		return "", ErrInvalidParticipant
	}
	pair := []string{idA, idB}
	sort.Strings(pair)
	return ConversationID(pair[0] + Separator + pair[1]), nil
}

// Participants splits the id back into its two sorted participant ids.
func (c ConversationID) Participants() (string, string, error) {
	a, b, ok := strings.Cut(string(c), Separator)
	if !ok || !validParticipant(a) || !validParticipant(b) || a > b {
		return "", "", ErrInvalidConversation
	}
	return a, b, nil
}

// Has reports whether userID is one of the two participants.
func (c ConversationID) Has(userID string) bool {
	a, b, err := c.Participants()
	return err == nil && (userID == a || userID == b)
}

// PeerOf returns the participant of c that is not selfID. In a
// self-conversation the peer is selfID.
func PeerOf(c ConversationID, selfID string) (string, error) {
	a, b, err := c.Participants()
	if err != nil {
		return "", err
	}
	switch selfID {
	case a:
		return b, nil
	case b:
		return a, nil
	default:
		return "", ErrNotParticipant
	}
}

// Topic is the change-notification topic for c.
func Topic(c ConversationID) string { return topicPrefix + string(c) }

// TopicPattern matches every conversation topic.
const TopicPattern = topicPrefix + "*"

func (c ConversationID) String() string { return string(c) }

func validParticipant(id string) bool {
	return id != "" && !strings.Contains(id, Separator)
}
