package port

import (
	"context"
	"statbot/internal/core/domain"
)

type Authorizer interface {
	// CheckIdentity resolves, asynchronously, whether the given nickname is
	// currently authenticated with the network's identity service. The returned
	// outcome always resolves exactly once.
	CheckIdentity(ctx context.Context, nick string) *domain.Outcome[bool]
}

// ReplyDecoder maps one raw identity-service notice onto the nickname it
// concerns and a closed verdict set. Text that is not an identity reply
// decodes to domain.VerdictUnrecognized.
type ReplyDecoder interface {
	Decode(text string) (string, domain.Verdict)
}
