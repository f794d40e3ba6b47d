package services

import (
	"math/rand"
	"sort"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	biWeeklyDays       = 14
	salaryHour         = 9
	businessHoursStart = 6
	businessHoursEnd   = 24
	maxDailyPurchases  = 4
)

// merchant is a sample payee. Category is the name of a default category, or
// empty for purchases left uncategorized.
type merchant struct {
	Name     string
	Category string
	Min, Max float64
}

// SampleDataGenerator builds realistic transaction requests for development
// accounts. Requests are replayed through the transaction service, so the
// generated history reconciles like user-entered data.
type SampleDataGenerator struct {
	merchants []merchant
	rng       *rand.Rand
}

func NewSampleDataGenerator(seed int64) *SampleDataGenerator {
	return &SampleDataGenerator{
		merchants: merchantPool(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func merchantPool() []merchant {
	return []merchant{
		{"Whole Foods Market", "Groceries", 15, 250},
		{"Trader Joe's", "Groceries", 15, 150},
		{"Kroger", "Groceries", 10, 200},
		{"Aldi", "Groceries", 10, 120},
		{"Costco Wholesale", "Groceries", 40, 300},

		{"Uber", "Transport", 10, 60},
		{"Lyft", "Transport", 10, 60},
		{"Shell", "Transport", 25, 80},
		{"Metro Transit", "Transport", 2.75, 40},

		{"Starbucks", "", 4, 18},
		{"Chipotle Mexican Grill", "", 9, 35},
		{"Amazon.com", "", 12, 250},
		{"Netflix", "", 15.49, 15.49},
		{"CVS Pharmacy", "", 6, 90},
	}
}

// Generate returns up to count requests dated between from and to, oldest
// first. Salary arrives bi-weekly; purchases are spread over the days.
// categories maps default category names to the user's category ids.
func (g *SampleDataGenerator) Generate(account *models.Account, categories map[string]uuid.UUID, from, to time.Time, count int) []dto.TransactionRequest {
	if count <= 0 || !to.After(from) {
		return []dto.TransactionRequest{}
	}

	requests := g.salaries(account, categories, from, to)
	for day := from; day.Before(to) && len(requests) < count; day = day.AddDate(0, 0, 1) {
		purchases := 1 + g.rng.Intn(maxDailyPurchases)
		for i := 0; i < purchases && len(requests) < count; i++ {
			requests = append(requests, g.purchase(account, categories, day))
		}
	}

	if len(requests) > count {
		requests = requests[:count]
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].TxnTime.Before(*requests[j].TxnTime)
	})
	return requests
}

func (g *SampleDataGenerator) salaries(account *models.Account, categories map[string]uuid.UUID, from, to time.Time) []dto.TransactionRequest {
	amounts := []int64{2500, 3000, 3500, 4000, 4500}
	salary := decimal.NewFromInt(amounts[g.rng.Intn(len(amounts))])

	requests := make([]dto.TransactionRequest, 0)
	for date := from.AddDate(0, 0, biWeeklyDays); !date.After(to); date = date.AddDate(0, 0, biWeeklyDays) {
		paidAt := time.Date(date.Year(), date.Month(), date.Day(), salaryHour, 0, 0, 0, time.UTC)
		requests = append(requests, dto.TransactionRequest{
			AccountID:   &account.ID,
			CategoryID:  categoryRef(categories, "Salary"),
			Direction:   models.DirectionIncome,
			Amount:      salary,
			Currency:    account.Currency,
			Description: "Direct Deposit - Salary Payment",
			TxnTime:     &paidAt,
			Merchant:    "ACME Corporation",
		})
	}
	return requests
}

func (g *SampleDataGenerator) purchase(account *models.Account, categories map[string]uuid.UUID, day time.Time) dto.TransactionRequest {
	m := g.merchants[g.rng.Intn(len(g.merchants))]
	at := g.timestamp(day)

	return dto.TransactionRequest{
		AccountID:   &account.ID,
		CategoryID:  categoryRef(categories, m.Category),
		Direction:   models.DirectionExpense,
		Amount:      g.amount(m),
		Currency:    account.Currency,
		Description: "Purchase at " + m.Name,
		TxnTime:     &at,
		Merchant:    m.Name,
	}
}

func (g *SampleDataGenerator) amount(m merchant) decimal.Decimal {
	value := m.Min + g.rng.Float64()*(m.Max-m.Min)
	amount := decimal.NewFromFloat(value).Round(models.AmountScale)
	if !amount.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return amount
}

func (g *SampleDataGenerator) timestamp(day time.Time) time.Time {
	hour := businessHoursStart + g.rng.Intn(businessHoursEnd-businessHoursStart)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, g.rng.Intn(60), g.rng.Intn(60), 0, time.UTC)
}

func categoryRef(categories map[string]uuid.UUID, name string) *uuid.UUID {
	if name == "" {
		return nil
	}
	id, ok := categories[name]
	if !ok {
		return nil
	}
	return &id
}
