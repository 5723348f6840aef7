package insights

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// featureCount is the fixed width of the per-transaction feature vector:
// amount, day of week, hour of day, merchant frequency, category frequency.
const featureCount = 5

// defaultHour stands in for time-of-day: the feed is date-only, so the
// feature is constant and standardizes away, but it keeps the vector shape
// stable if intraday data ever arrives.
const defaultHour = 12

// anomalyConfidence is the fixed score attached to every anomaly flag.
const anomalyConfidence = 0.85

// DetectAnomalies flags statistical outliers in the transaction set. The
// detector is fit fresh against the given window on every call; no model
// state survives. Below the minimum window size the noise floor swamps any
// signal, so the result is empty.
//
// Scoring is density based: each standardized feature vector is ranked by
// its mean distance to its nearest neighbors, and the configured
// contamination fraction of the window is flagged, never more than
// MaxAnomalyInsights per run. Flags come back in descending outlier-score
// order.
func (e *Engine) DetectAnomalies(txns []model.Transaction) []model.AnomalyFlag {
	if len(txns) < e.cfg.MinAnomalyTransactions {
		return nil
	}

	features := e.buildFeatures(txns)
	standardize(features)
	scores := knnOutlierScores(features)

	flagCount := int(float64(len(txns)) * e.cfg.Contamination)
	if flagCount < 1 {
		flagCount = 1
	}
	if flagCount > e.cfg.MaxAnomalyInsights {
		flagCount = e.cfg.MaxAnomalyInsights
	}

	order := make([]int, len(txns))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	meanAbs := meanAbsAmount(txns)

	var flags []model.AnomalyFlag
	for _, idx := range order[:flagCount] {
		t := txns[idx]
		amount := math.Abs(t.Amount)

		var flag model.AnomalyFlag
		if meanAbs > 0 && amount > e.cfg.HighAmountMultiplier*meanAbs {
			flag = model.AnomalyFlag{
				TransactionID: t.ID,
				Reason:        model.AnomalyHighAmount,
				Message: fmt.Sprintf(
					"Unusually high transaction detected: $%.2f at %s on %s. This is %.1fx your average spending.",
					amount, t.Merchant(), t.Date.Format("2006-01-02"), amount/meanAbs),
				Confidence: anomalyConfidence,
			}
		} else {
			flag = model.AnomalyFlag{
				TransactionID: t.ID,
				Reason:        model.AnomalyUnusualPattern,
				Message: fmt.Sprintf(
					"Unusual transaction pattern detected: $%.2f at %s. This merchant or timing is uncommon for your spending habits.",
					amount, t.Merchant()),
				Confidence: anomalyConfidence,
			}
		}
		flags = append(flags, flag)
	}
	return flags
}

// buildFeatures assembles one fixed-width numeric vector per transaction.
func (e *Engine) buildFeatures(txns []model.Transaction) [][]float64 {
	merchantCounts := make(map[string]int)
	categoryCounts := make(map[string]int)
	totalCategoryMentions := 0
	for _, t := range txns {
		merchantCounts[t.Merchant()]++
		for _, c := range transactionCategories(t) {
			categoryCounts[c]++
			totalCategoryMentions++
		}
	}

	features := make([][]float64, len(txns))
	for i, t := range txns {
		catFreq := 0.0
		if totalCategoryMentions > 0 {
			mentions := 0
			for _, c := range transactionCategories(t) {
				mentions += categoryCounts[c]
			}
			catFreq = float64(mentions) / float64(totalCategoryMentions)
		}
		features[i] = []float64{
			t.Amount,
			float64(t.Date.Weekday()),
			defaultHour,
			float64(merchantCounts[t.Merchant()]) / float64(len(txns)),
			catFreq,
		}
	}
	return features
}

// transactionCategories returns the distinct category mentions of a
// transaction (primary plus detailed when it differs).
func transactionCategories(t model.Transaction) []string {
	var cats []string
	if t.CategoryPrimary != "" {
		cats = append(cats, t.CategoryPrimary)
	}
	if t.CategoryDetailed != "" && t.CategoryDetailed != t.CategoryPrimary {
		cats = append(cats, t.CategoryDetailed)
	}
	return cats
}

// standardize rescales each feature column to zero mean and unit variance in
// place. Constant columns (like the fixed hour) become all zeros.
func standardize(features [][]float64) {
	if len(features) == 0 {
		return
	}
	column := make([]float64, len(features))
	for f := 0; f < featureCount; f++ {
		for i := range features {
			column[i] = features[i][f]
		}
		mean := stat.Mean(column, nil)
		std := stat.StdDev(column, nil)
		for i := range features {
			if std > 0 {
				features[i][f] = (features[i][f] - mean) / std
			} else {
				features[i][f] = 0
			}
		}
	}
}

// knnOutlierScores scores each vector by its mean Euclidean distance to its
// k nearest neighbors. Sparse neighborhoods score high.
func knnOutlierScores(features [][]float64) []float64 {
	n := len(features)
	k := 5
	if k > n-1 {
		k = n - 1
	}

	scores := make([]float64, n)
	dists := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		dists = dists[:0]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dists = append(dists, euclidean(features[i], features[j]))
		}
		sort.Float64s(dists)
		var sum float64
		for _, d := range dists[:k] {
			sum += d
		}
		scores[i] = sum / float64(k)
	}
	return scores
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func meanAbsAmount(txns []model.Transaction) float64 {
	if len(txns) == 0 {
		return 0
	}
	var sum float64
	for _, t := range txns {
		sum += math.Abs(t.Amount)
	}
	return sum / float64(len(txns))
}
