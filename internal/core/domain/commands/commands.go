// Package commands holds one handler per bot command.
package commands

// meta carries the descriptor fields shared by every handler.
type meta struct {
	command    string
	usage      string
	help       string
	privileged bool
}

func (m meta) GetCommand() string { return m.command }
func (m meta) GetUsage() string   { return m.usage }
func (m meta) GetHelp() string    { return m.help }
func (m meta) Privileged() bool   { return m.privileged }
