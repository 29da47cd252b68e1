package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mflstudio/concours/pkg/kinematic"
	"github.com/mflstudio/concours/pkg/messages"
)

var errUsage = errors.New("commands: join NAME | start | reveal TILE | answer INDEX | move X Y Z [ROT] | ping | grid | exit")

// parseCommand turns a console line into a game command.
func parseCommand(line string) (messages.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errUsage
	}

	switch fields[0] {
	case "join":
		if len(fields) != 2 {
			return nil, errUsage
		}
		return messages.JoinCommand{Name: fields[1]}, nil
	case "start":
		return messages.StartGameCommand{}, nil
	case "reveal":
		if len(fields) != 2 {
			return nil, errUsage
		}
		tileID, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid tile %q", fields[1])
		}
		return messages.RevealTileCommand{TileID: tileID}, nil
	case "answer":
		if len(fields) != 2 {
			return nil, errUsage
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q", fields[1])
		}
		return messages.AnswerQuestionCommand{AnswerIndex: index}, nil
	case "move":
		if len(fields) != 4 && len(fields) != 5 {
			return nil, errUsage
		}
		coords := make([]float64, 4)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate %q", field)
			}
			coords[i] = v
		}
		return messages.MoveCommand{
			Pose: kinematic.NewPose(kinematic.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, coords[3]),
		}, nil
	default:
		return nil, errUsage
	}
}

// printGameState writes a one-screen summary of a snapshot.
func printGameState(w io.Writer, s *messages.GameStateUpdate) {
	fmt.Fprintf(w, "[%s] round %d", s.Phase, s.Epoch)
	if s.Phase == "MEMORIZE" {
		fmt.Fprintf(w, ", %ds left", s.MemorizeTimer)
	}
	if s.CurrentTurn != "" {
		fmt.Fprintf(w, ", %s to play", s.CurrentTurn)
	}
	fmt.Fprintln(w)

	scores := make([]string, 0, len(s.Roster))
	for _, name := range s.Roster {
		scores = append(scores, fmt.Sprintf("%s %d", name, s.Scores[name]))
	}
	fmt.Fprintf(w, "  scores: %s\n", strings.Join(scores, ", "))

	players := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, p.Name)
	}
	sort.Strings(players)
	fmt.Fprintf(w, "  connected: %s\n", strings.Join(players, ", "))

	if q := s.ActiveQuestion; q != nil {
		fmt.Fprintf(w, "  %s asks %s (tier %d): %s\n", q.TileOwner, q.AnsweringPlayer, q.Tier, q.Question)
		for i, option := range q.Options {
			fmt.Fprintf(w, "    %d. %s\n", i, option)
		}
	}
	switch s.AnswerFeedback {
	case "correct":
		fmt.Fprintf(w, "  correct! +%d\n", s.LastPoints)
	case "incorrect":
		fmt.Fprintln(w, "  incorrect")
	}
}

// printGrid draws the grid row by row. Hidden tiles show their id, revealed
// tiles the first letter of their owner.
func printGrid(w io.Writer, s *messages.GameStateUpdate) {
	if len(s.Grid) == 0 {
		fmt.Fprintln(w, "no grid yet")
		return
	}

	width := 0
	for _, tile := range s.Grid {
		if tile.X+1 > width {
			width = tile.X + 1
		}
	}
	rows := make(map[int][]string)
	maxRow := 0
	for _, tile := range s.Grid {
		if rows[tile.Y] == nil {
			rows[tile.Y] = make([]string, width)
		}
		cell := fmt.Sprintf("%3d", tile.ID)
		if tile.Revealed && tile.Owner != "" {
			cell = "  " + strings.ToUpper(tile.Owner[:1])
		}
		rows[tile.Y][tile.X] = cell
		if tile.Y > maxRow {
			maxRow = tile.Y
		}
	}
	for y := 0; y <= maxRow; y++ {
		fmt.Fprintln(w, strings.TrimRight(strings.Join(rows[y], " "), " "))
	}
}
