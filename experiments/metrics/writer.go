package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SearchRecord struct {
	ID    int
	Move  int
	Value float64
	SearchMetric
}

type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Sink stores experiment records.
type Sink interface {
	WriteSearchRecords(records []SearchRecord) error
	WriteGameRecords(records []GameRecord) error
	WriteMoveRecords(records []MoveRecord) error
	Close() error
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by experiment and current timestamp.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) Close() error { return nil }

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"id", "size", "depth_limit", "pruning", "move", "value", "nodes_visited", "nodes_evaluated", "max_depth_reached", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Size),
			strconv.Itoa(record.DepthLimit),
			strconv.FormatBool(record.Pruning),
			strconv.Itoa(record.Move),
			strconv.FormatFloat(record.Value, 'f', -1, 64),
			strconv.Itoa(record.NodesVisited),
			strconv.Itoa(record.NodesEvaluated),
			strconv.Itoa(record.MaxDepthReached),
			record.Duration.String(),
		})
	}
	return w.write("search_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "size", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			strconv.Itoa(record.Size),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth_limit", "nodes_visited", "nodes_evaluated", "max_depth_reached", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Move),
			strconv.Itoa(record.DepthLimit),
			strconv.Itoa(record.NodesVisited),
			strconv.Itoa(record.NodesEvaluated),
			strconv.Itoa(record.MaxDepthReached),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}
