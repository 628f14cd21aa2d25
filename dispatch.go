// dispatch.go
//
// REPL command parsing for `wordler solve`. A line of input becomes
// one value of the closed command type below; the REPL loop then
// dispatches on the kind with a plain switch. Parsing is pure so it
// can be tested without a terminal.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type cmdKind int

const (
	cmdTop cmdKind = iota
	cmdScore
	cmdGuessed
	cmdHistory
	cmdUndo
	cmdHelp
	cmdExit
)

// command is the tagged variant produced from one REPL line. Only the
// fields relevant to the kind are set.
type command struct {
	kind   cmdKind
	n      int    // top
	strict bool   // top
	word   string // score, guessed
	hint   string // guessed
}

var errBadCommand = errors.New("bad command")

// parseCommand tokenizes one input line into a command.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errBadCommand
	}

	switch fields[0] {
	case "top":
		if len(fields) < 2 || len(fields) > 3 {
			return command{}, fmt.Errorf("%w: usage: top <n> [strict]", errBadCommand)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("%w: top wants a number, got %q", errBadCommand, fields[1])
		}
		strict := false
		if len(fields) == 3 {
			if fields[2] != "strict" {
				return command{}, fmt.Errorf("%w: usage: top <n> [strict]", errBadCommand)
			}
			strict = true
		}
		return command{kind: cmdTop, n: n, strict: strict}, nil

	case "score":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("%w: usage: score <word>", errBadCommand)
		}
		return command{kind: cmdScore, word: fields[1]}, nil

	case "guessed":
		if len(fields) != 3 {
			return command{}, fmt.Errorf("%w: usage: guessed <word> <hint>", errBadCommand)
		}
		return command{kind: cmdGuessed, word: fields[1], hint: fields[2]}, nil

	case "history":
		return command{kind: cmdHistory}, nil
	case "undo":
		return command{kind: cmdUndo}, nil
	case "help":
		return command{kind: cmdHelp}, nil
	case "exit", "quit":
		return command{kind: cmdExit}, nil
	}
	return command{}, fmt.Errorf("%w: %q", errBadCommand, fields[0])
}
