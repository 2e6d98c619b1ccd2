package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// WriteGameRecords writes one CSV row per finished game.
func WriteGameRecords(w io.Writer, records []GameMetric) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{"id", "starting_player", "winner", "start_time", "end_time", "duration", "moves"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		winner := "draw"
		if !record.Draw {
			winner = record.Winner.String()
		}
		row := []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer.String(),
			winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
