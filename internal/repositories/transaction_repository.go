package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

var transactionUpdatableColumns = []string{
	"account_id", "category_id", "direction", "amount", "currency", "description",
	"txn_time", "merchant", "is_pending", "external_id", "updated_at",
}

// effectSQL is the per-row signed effect; it mirrors models.Transaction.Effect.
const effectSQL = "CASE WHEN direction = ? THEN amount WHEN direction = ? THEN -amount ELSE 0 END"

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (r *transactionRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error) {
	return r.getForUser(r.db, id, userID)
}

// GetForUpdate loads the row under a row lock (FOR UPDATE on postgres; sqlite
// serializes writers and ignores the clause).
func (r *transactionRepository) GetForUpdate(id, userID uuid.UUID) (*models.Transaction, error) {
	return r.getForUser(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id, userID)
}

func (r *transactionRepository) getForUser(db *gorm.DB, id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update writes every mutable column of the transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(transaction).Select(transactionUpdatableColumns).Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// List retrieves a user's transactions with filters, search and pagination
func (r *transactionRepository) List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	order, err := orderClause(filters.Ordering, models.TransactionOrderings, "txn_time DESC, id ASC")
	if err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filters.Direction != "" {
		query = query.Where("direction = ?", filters.Direction)
	}
	if filters.Date != nil {
		day := models.DayStart(*filters.Date)
		query = query.Where("txn_time >= ? AND txn_time < ?", day, day.AddDate(0, 0, 1))
	}
	if filters.DateFrom != nil {
		query = query.Where("txn_time >= ?", models.DayStart(*filters.DateFrom))
	}
	if filters.DateTo != nil {
		query = query.Where("txn_time < ?", models.DayStart(*filters.DateTo).AddDate(0, 0, 1))
	}
	if filters.Amount != nil {
		query = query.Where("amount = ?", *filters.Amount)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.IsPending != nil {
		query = query.Where("is_pending = ?", *filters.IsPending)
	}
	if filters.Search != "" {
		pattern := containsPattern(filters.Search)
		query = query.Where(
			"(LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(merchant) LIKE ? ESCAPE '\\' OR LOWER(external_id) LIKE ? ESCAPE '\\')",
			pattern, pattern, pattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := paginate(query, filters.Page).Order(order).Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) ListAllByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).Order("txn_time ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for user: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) CountByAccountID(accountID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// SumEffectsByAccountID recomputes the balance an account should hold from
// its transactions, together with the number of rows summed.
func (r *transactionRepository) SumEffectsByAccountID(accountID uuid.UUID) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Count int64
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM("+effectSQL+"), 0) AS total, COUNT(*) AS count",
			models.DirectionIncome, models.DirectionExpense).
		Where("account_id = ?", accountID).
		Scan(&row).Error; err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum transaction effects: %w", err)
	}

	return row.Total.Round(models.AmountScale), row.Count, nil
}

func (r *transactionRepository) DeleteByAccountID(accountID uuid.UUID) (int64, error) {
	result := r.db.Where("account_id = ?", accountID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete account transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// ClearCategory detaches every transaction from a category that is being removed
func (r *transactionRepository) ClearCategory(categoryID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear transaction category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// TotalsByDirection sums income and expense amounts over all of a user's transactions
func (r *transactionRepository) TotalsByDirection(userID uuid.UUID) (income, expense decimal.Decimal, err error) {
	var rows []struct {
		Direction string
		Total     decimal.Decimal
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("direction, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND direction IN ?", userID, []string{models.DirectionIncome, models.DirectionExpense}).
		Group("direction").
		Scan(&rows).Error; err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to total transactions: %w", err)
	}

	income, expense = decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch row.Direction {
		case models.DirectionIncome:
			income = row.Total.Round(models.AmountScale)
		case models.DirectionExpense:
			expense = row.Total.Round(models.AmountScale)
		}
	}

	return income, expense, nil
}

// SpendingByCategory groups expenses by category within inclusive calendar
// dates. Uncategorized expenses form one group with a nil category.
func (r *transactionRepository) SpendingByCategory(userID uuid.UUID, from, to *time.Time) ([]models.CategorySpending, error) {
	query := r.db.Table("transactions AS t").
		Select("t.category_id AS category_id, c.name AS category_name, COALESCE(SUM(t.amount), 0) AS total").
		Joins("LEFT JOIN categories AS c ON c.id = t.category_id").
		Where("t.user_id = ? AND t.direction = ?", userID, models.DirectionExpense)

	if from != nil {
		query = query.Where("t.txn_time >= ?", models.DayStart(*from))
	}
	if to != nil {
		query = query.Where("t.txn_time < ?", models.DayStart(*to).AddDate(0, 0, 1))
	}

	var rows []models.CategorySpending
	if err := query.Group("t.category_id, c.name").
		Order("total DESC, category_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate spending by category: %w", err)
	}

	for i := range rows {
		rows[i].Total = rows[i].Total.Round(models.AmountScale)
	}

	return rows, nil
}

// SumExpenses totals expenses of one category in the half-open range [from, to)
func (r *transactionRepository) SumExpenses(userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var row decimalRow
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND category_id = ? AND direction = ?", userID, categoryID, models.DirectionExpense).
		Where("txn_time >= ? AND txn_time < ?", from, to).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return row.value(), nil
}
