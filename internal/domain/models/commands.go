package models

import "strings"

// CommandType enumerates the chat commands understood over WhatsApp.
type CommandType string

const (
	CommandProduction CommandType = "producao"
	CommandSummary    CommandType = "resumo"
	CommandRanking    CommandType = "ranking"
	CommandPending    CommandType = "pendente"
	CommandProjection CommandType = "projecao"
	CommandUnknown    CommandType = "unknown"
)

var commandAliases = map[string]CommandType{
	"producao":  CommandProduction,
	"produção":  CommandProduction,
	"prod":      CommandProduction,
	"resumo":    CommandSummary,
	"ranking":   CommandRanking,
	"pendente":  CommandPending,
	"pendentes": CommandPending,
	"projecao":  CommandProjection,
	"projeção":  CommandProjection,
}

// Command is a parsed chat instruction.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from a free-form message. The leading slash
// is optional and the command word is case-insensitive; arguments keep their
// original casing.
func ParseCommand(message string) Command {
	tokens := strings.Fields(message)
	cmd := Command{Type: CommandUnknown, Raw: message}
	if len(tokens) == 0 {
		return cmd
	}

	head := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
	if t, ok := commandAliases[head]; ok {
		cmd.Type = t
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
