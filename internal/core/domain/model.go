package domain

// Message is one inbound chat message after the dispatcher has stripped the
// address prefix and parsed the arguments.
type Message struct {
	Nick    string
	Channel string
	Text    string
	Args    []string
}

// Verdict is the closed set of meanings an identity-service reply can carry.
type Verdict int

const (
	VerdictUnrecognized Verdict = iota
	VerdictAuthenticated
	VerdictNotAuthenticated
)
