package entity

import "time"

// BatchSummary is the published record of one finished batch.
type BatchSummary struct {
	RunID           string    `json:"run_id"`
	StrategyA       string    `json:"strategy_a"`
	StrategyB       string    `json:"strategy_b"`
	Games           int       `json:"games"`
	WinsA           int       `json:"wins_a"`
	WinsB           int       `json:"wins_b"`
	Ties            int       `json:"ties"`
	FirstMoverWins  int       `json:"first_mover_wins"`
	SecondMoverWins int       `json:"second_mover_wins"`
	Seed            uint64    `json:"seed"`
	FinishedAt      time.Time `json:"finished_at"`
}
