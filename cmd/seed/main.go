// Command seed creates the application schema and inserts the sample
// events. Running it against an already-seeded database is a no-op.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/iliyamo/event-booking/internal/config"
	"github.com/iliyamo/event-booking/internal/database"
	"github.com/iliyamo/event-booking/internal/model"
)

var seedEvents = []model.Event{
	{Title: "Wedding Celebration", District: "Hyderabad", DateText: "2025-11-01", BasePrice: 1000, Description: "Full-day wedding services"},
	{Title: "Cultural Concert", District: "Warangal", DateText: "2025-10-15", BasePrice: 800, Description: "Evening concert featuring local artists"},
	{Title: "Food Festival", District: "Karimnagar", DateText: "2025-12-05", BasePrice: 400, Description: "Street food & local specialities"},
	{Title: "Corporate Meet", District: "Nizamabad", DateText: "2025-09-28", BasePrice: 700, Description: "Conference halls and arrangements"},
}

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("ensure schema")
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		logger.Fatal().Err(err).Msg("count events")
	}
	if n > 0 {
		logger.Info().Int("events", n).Msg("catalog already seeded; nothing to do")
		return
	}

	for _, ev := range seedEvents {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO events (title, district, date_text, base_price, description) VALUES (?,?,?,?,?)",
			ev.Title, ev.District, ev.DateText, ev.BasePrice, ev.Description); err != nil {
			logger.Fatal().Err(err).Str("title", ev.Title).Msg("insert event")
		}
	}
	logger.Info().Int("events", len(seedEvents)).Msg("schema created and sample events seeded")
}
