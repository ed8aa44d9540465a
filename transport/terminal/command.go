package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/quoridor-backend/internal/quoridor"
)

const usage = `commands:
  move X Y       relocate your pawn to column X, row Y
  fence v X Y    place a vertical fence anchored at column X, row Y
  fence h X Y    place a horizontal fence anchored at column X, row Y
  board          reprint the board
  help           show this message
  quit           abandon the game`

var errUnknownCommand = errors.New("unknown command, try 'help'")

type commandKind int

const (
	cmdMove commandKind = iota
	cmdFence
	cmdBoard
	cmdHelp
	cmdQuit
)

type command struct {
	kind        commandKind
	orientation quoridor.Orientation
	cell        quoridor.Cell
}

// parseCommand understands the syntax only; coordinate semantics belong to
// the engine, which answers with its outcome set.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, errUnknownCommand
	}

	switch fields[0] {
	case "move":
		if len(fields) != 3 {
			return command{}, fmt.Errorf("%w: move needs two coordinates", errUnknownCommand)
		}

		cell, err := parseCell(fields[1], fields[2])
		if err != nil {
			return command{}, err
		}

		return command{kind: cmdMove, cell: cell}, nil

	case "fence":
		if len(fields) != 4 {
			return command{}, fmt.Errorf("%w: fence needs an orientation and two coordinates", errUnknownCommand)
		}

		cell, err := parseCell(fields[2], fields[3])
		if err != nil {
			return command{}, err
		}

		return command{kind: cmdFence, orientation: quoridor.Orientation(fields[1]), cell: cell}, nil

	case "board":
		return command{kind: cmdBoard}, nil
	case "help":
		return command{kind: cmdHelp}, nil
	case "quit", "exit":
		return command{kind: cmdQuit}, nil
	default:
		return command{}, errUnknownCommand
	}
}

func parseCell(rawX, rawY string) (quoridor.Cell, error) {
	x, err := strconv.Atoi(rawX)
	if err != nil {
		return quoridor.Cell{}, fmt.Errorf("%w: %q is not a number", errUnknownCommand, rawX)
	}

	y, err := strconv.Atoi(rawY)
	if err != nil {
		return quoridor.Cell{}, fmt.Errorf("%w: %q is not a number", errUnknownCommand, rawY)
	}

	return quoridor.Cell{X: x, Y: y}, nil
}
