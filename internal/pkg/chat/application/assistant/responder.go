// Package assistant picks the canned answer the synthetic chat participant
// gives to a message.
package assistant

import "strings"

// Rule answers with Response when Match accepts the lower-cased message.
type Rule struct {
	Name     string
	Match    func(lowered string) bool
	Response string
}

// Responder evaluates its rules in order; the first match wins.
type Responder struct {
	rules    []Rule
	fallback string
}

// New builds a Responder. fallback is used when no rule matches.
func New(fallback string, rules ...Rule) *Responder {
	return &Responder{rules: rules, fallback: fallback}
}

// Contains matches when the message contains any of words.
func Contains(words ...string) func(string) bool {
	return func(lowered string) bool {
		for _, w := range words {
			if strings.Contains(lowered, w) {
				return true
			}
		}
		return false
	}
}

// Default is the assistant's standard rule set.
func Default() *Responder {
	return New("I'm still learning! Ask me something else. 😊",
		Rule{Name: "greeting", Match: Contains("hello", "hi"), Response: "Hello! How can I assist you today? 😊"},
		Rule{Name: "help", Match: Contains("help"), Response: "Sure! I can help with anything related to this chat app."},
		Rule{Name: "identity", Match: Contains("your name"), Response: "I'm your AI assistant! 🤖"},
		Rule{Name: "farewell", Match: Contains("bye"), Response: "Goodbye! Have a great day. 👋"},
	)
}

// Reply returns the answer to message. It is a pure function of its input.
func (r *Responder) Reply(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range r.rules {
		if rule.Match(lowered) {
			return rule.Response
		}
	}
	return r.fallback
}
