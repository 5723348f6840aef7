// Command analyze runs one insight-engine pass for a user and prints the
// result. Transactions come either from a JSON export on disk (loaded into
// the in-memory store) or straight from Firestore when a project is
// configured.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/insights"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/service"
	"github.com/mnguyen4869/palo-alto-budget-app/internal/store"
)

func main() {
	var (
		file        = flag.String("file", "", "path to a JSON array of transactions")
		userID      = flag.String("user", "demo-user", "user to analyze")
		goalTarget  = flag.Float64("goal-target", 0, "optional goal target amount")
		goalCurrent = flag.Float64("goal-current", 0, "optional goal current amount")
		goalDate    = flag.String("goal-date", "", "optional goal target date (YYYY-MM-DD)")
	)
	flag.Parse()

	ctx := context.Background()

	var st store.Store
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("GOOGLE_CLOUD_PROJECT") == ""
	if useMemoryStore {
		log.Println("Using in-memory store")
		mem := store.NewMemoryStore()
		if *file == "" {
			log.Fatal("-file is required with the in-memory store")
		}
		if err := loadTransactions(ctx, mem, *file, *userID); err != nil {
			log.Fatalf("Failed to load transactions: %v", err)
		}
		st = mem
	} else {
		client, err := firestore.NewClient(ctx, os.Getenv("GOOGLE_CLOUD_PROJECT"))
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer client.Close()
		st = store.NewFirestoreStore(client)
	}

	svc := service.NewInsightService(st, insights.DefaultConfig())

	result, err := svc.Analyze(ctx, *userID)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	printResult(result)

	if _, err := svc.GenerateInsights(ctx, *userID); err != nil {
		log.Fatalf("Failed to persist insights: %v", err)
	}

	if *goalTarget > 0 && *goalDate != "" {
		forecastGoal(ctx, st, svc, *userID, *goalTarget, *goalCurrent, *goalDate)
	}
}

// loadTransactions seeds the memory store from a JSON export. Rows missing
// an ID get one assigned; the engine rejects rows without dates.
func loadTransactions(ctx context.Context, st store.Store, path, userID string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for i := range txns {
		if txns[i].ID == "" {
			txns[i].ID = uuid.New().String()
		}
		txns[i].UserID = userID
		if err := st.CreateTransaction(ctx, &txns[i]); err != nil {
			return err
		}
	}
	log.Printf("Loaded %d transactions from %s", len(txns), path)
	return nil
}

func forecastGoal(ctx context.Context, st store.Store, svc *service.InsightService, userID string, target, current float64, date string) {
	targetDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		log.Fatalf("Invalid -goal-date: %v", err)
	}
	goal := &model.Goal{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          "savings goal",
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
	}
	if err := st.CreateGoal(ctx, goal); err != nil {
		log.Fatalf("Failed to create goal: %v", err)
	}
	forecast, err := svc.ForecastGoal(ctx, userID, goal.ID)
	if err != nil {
		log.Fatalf("Forecast failed: %v", err)
	}
	fmt.Printf("\nGoal forecast (on_track=%t, confidence=%.2f):\n  %s\n",
		forecast.OnTrack, forecast.Confidence, forecast.Message)
}

func printResult(r *model.AnalysisResult) {
	fmt.Printf("Subscriptions (%d):\n", len(r.Subscriptions))
	for _, s := range r.Subscriptions {
		fmt.Printf("  %s  $%.2f %s  x%d  ($%.2f total)\n",
			s.Merchant, s.Amount, s.Frequency, s.OccurrenceCount, s.TotalSpent)
	}
	fmt.Printf("Gray charges (%d):\n", len(r.GrayCharges))
	for _, g := range r.GrayCharges {
		fmt.Printf("  %s  $%.2f %s  x%d  ($%.2f total)\n",
			g.Merchant, g.Amount, g.Frequency, g.OccurrenceCount, g.TotalSpent)
	}
	fmt.Printf("Income streams (%d):\n", len(r.IncomeStreams))
	for _, in := range r.IncomeStreams {
		fmt.Printf("  %s  $%.2f/month  %s  confidence=%.2f  days=%d\n",
			in.SourceName, in.MonthlyIncome, in.Frequency, in.Confidence, in.DaysOfData)
	}
	fmt.Printf("Anomalies (%d):\n", len(r.Anomalies))
	for _, a := range r.Anomalies {
		fmt.Printf("  [%s] %s\n", a.Reason, a.Message)
	}
	fmt.Printf("Insights (%d):\n", len(r.Insights))
	for _, in := range r.Insights {
		fmt.Printf("  [%s] %s (%.2f)\n", in.Type, in.Title, in.ConfidenceScore)
	}
}
