package insights

import (
	"sort"
	"time"

	"github.com/mnguyen4869/palo-alto-budget-app/internal/model"
)

// Series is one candidate recurring charge: every transaction that hit the
// same normalized merchant for the same exact amount, in date order.
type Series struct {
	Merchant string
	Amount   float64
	Dates    []time.Time
}

// groupExactKey buckets transactions under (normalized merchant, exact
// amount). Subscriptions bill the same figure every cycle, so no fuzzy
// matching happens on this path. Groups with fewer than minOccurrences
// carry no signal and are discarded. Output order is deterministic.
func groupExactKey(txns []model.Transaction, minOccurrences int) []Series {
	type key struct {
		merchant string
		amount   float64
	}
	groups := make(map[key][]time.Time)
	for _, t := range txns {
		k := key{merchant: NormalizeMerchant(t.Merchant()), amount: t.Amount}
		groups[k] = append(groups[k], t.Date)
	}

	var series []Series
	for k, dates := range groups {
		if len(dates) < minOccurrences {
			continue
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		series = append(series, Series{Merchant: k.merchant, Amount: k.amount, Dates: dates})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Merchant != series[j].Merchant {
			return series[i].Merchant < series[j].Merchant
		}
		return series[i].Amount < series[j].Amount
	})
	return series
}

// cluster is a fuzzy-merged group of deposits believed to share one source,
// even when the payer reports under varying names ("ACME Corp Payroll",
// "ACME PPD", ...).
type cluster struct {
	label string // normalized display key; the shortest seen wins
	txns  []model.Transaction
}

func (c *cluster) meanAmount() float64 {
	if len(c.txns) == 0 {
		return 0
	}
	var sum float64
	for _, t := range c.txns {
		sum += t.Amount
	}
	return sum / float64(len(c.txns))
}

func (c *cluster) dates() []time.Time {
	dates := make([]time.Time, 0, len(c.txns))
	for _, t := range c.txns {
		dates = append(dates, t.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// clusterFuzzy starts from per-raw-merchant buckets and greedily merges any
// two whose labels and representative amounts satisfy the similarity
// predicate. Buckets are visited in sorted label order so the result does
// not depend on map iteration.
func (e *Engine) clusterFuzzy(txns []model.Transaction, minOccurrences int) []cluster {
	buckets := make(map[string][]model.Transaction)
	for _, t := range txns {
		buckets[t.Merchant()] = append(buckets[t.Merchant()], t)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	clusters := make([]cluster, 0, len(names))
	for _, name := range names {
		clusters = append(clusters, cluster{label: NormalizeMerchant(name), txns: buckets[name]})
	}

	// Greedy pairwise merge; a merged cluster keeps absorbing until no
	// remaining bucket is similar to it.
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); {
			a, b := &clusters[i], &clusters[j]
			if e.cfg.Similar(a.label, a.meanAmount(), b.label, b.meanAmount()) {
				if len(b.label) < len(a.label) {
					a.label = b.label
				}
				a.txns = append(a.txns, b.txns...)
				clusters = append(clusters[:j], clusters[j+1:]...)
				continue
			}
			j++
		}
	}

	var out []cluster
	for _, c := range clusters {
		if len(c.txns) < minOccurrences {
			continue
		}
		out = append(out, c)
	}
	return out
}
