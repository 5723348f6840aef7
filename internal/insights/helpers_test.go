package insights

import (
	"fmt"
	"time"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func expense(id, merchant string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:           id,
		UserID:       "user-1",
		Name:         merchant,
		MerchantName: merchant,
		Amount:       amount,
		Date:         date,
	}
}

func deposit(id, merchant string, amount float64, date time.Time) model.Transaction {
	t := expense(id, merchant, -amount, date)
	return t
}

// recurringSeries emits count transactions at the same merchant and amount,
// gapDays apart.
func recurringSeries(prefix, merchant string, amount float64, gapDays, count int, start time.Time) []model.Transaction {
	var txns []model.Transaction
	for i := 0; i < count; i++ {
		txns = append(txns, expense(
			fmt.Sprintf("%s-%d", prefix, i), merchant, amount, start.AddDate(0, 0, i*gapDays)))
	}
	return txns
}

// depositSeries emits count deposits at the same merchant and amount,
// gapDays apart.
func depositSeries(prefix, merchant string, amount float64, gapDays, count int, start time.Time) []model.Transaction {
	var txns []model.Transaction
	for i := 0; i < count; i++ {
		txns = append(txns, deposit(
			fmt.Sprintf("%s-%d", prefix, i), merchant, amount, start.AddDate(0, 0, i*gapDays)))
	}
	return txns
}

// fillerExpenses emits n one-off expenses at distinct merchants so they can
// never group into a series.
func fillerExpenses(n int, start time.Time) []model.Transaction {
	var txns []model.Transaction
	for i := 0; i < n; i++ {
		txns = append(txns, expense(
			fmt.Sprintf("filler-%d", i),
			fmt.Sprintf("One Off Shop %d", i),
			25+float64(i),
			start.AddDate(0, 0, i)))
	}
	return txns
}
