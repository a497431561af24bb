// Package nickserv decodes the free-text notices IRC services bots send in
// answer to identity probes.
package nickserv

import (
	"statbot/internal/core/domain"
	"strings"
)

// Decoder maps raw notice text onto the closed verdict set the correlation
// engine understands. It recognizes the two common reply grammars:
//
//	STATUS <nick> <level>   (Anope)
//	<nick> ACC <level>      (Atheme)
//
// Level 3 means the nick is identified to services; 0 through 2 mean it is
// not. Everything else is noise.
type Decoder struct{}

func (Decoder) Decode(text string) (string, domain.Verdict) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return "", domain.VerdictUnrecognized
	}

	var nick, level string
	switch {
	case strings.EqualFold(fields[0], "STATUS"):
		nick, level = fields[1], fields[2]
	case strings.EqualFold(fields[1], "ACC"):
		nick, level = fields[0], fields[2]
	default:
		return "", domain.VerdictUnrecognized
	}

	switch level {
	case "3":
		return nick, domain.VerdictAuthenticated
	case "0", "1", "2":
		return nick, domain.VerdictNotAuthenticated
	default:
		return "", domain.VerdictUnrecognized
	}
}
