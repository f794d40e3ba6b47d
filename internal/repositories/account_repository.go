package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountNameExists     = errors.New("account name already exists")
	ErrStaleAccountReference = errors.New("account no longer exists")
)

// accountUpdatableColumns never includes balance.
var accountUpdatableColumns = []string{"name", "type", "institution", "currency", "is_active", "updated_at"}

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrAccountNameExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID regardless of owner
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByIDForUser treats accounts of other users as missing
func (r *accountRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// List retrieves a user's accounts with filters and pagination
func (r *accountRepository) List(userID uuid.UUID, filters models.AccountFilters) ([]models.Account, int64, error) {
	order, err := orderClause(filters.Ordering, models.AccountOrderings, "created_at ASC, id ASC")
	if err != nil {
		return nil, 0, err
	}

	var accounts []models.Account
	var total int64

	query := r.db.Model(&models.Account{}).Where("user_id = ?", userID)

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", filters.Currency)
	}
	if filters.Search != "" {
		pattern := containsPattern(filters.Search)
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(institution) LIKE ? ESCAPE '\\')", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := paginate(query, filters.Page).Order(order).Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, total, nil
}

func (r *accountRepository) ListAllByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// FirstActive returns the oldest active account of the user
func (r *accountRepository) FirstActive(userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC, id ASC").
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get first active account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// Update writes the descriptive columns only
func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Model(account).Select(accountUpdatableColumns).Updates(account)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrAccountNameExists
		}
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Account{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Account{}).Error; err != nil {
		return fmt.Errorf("failed to delete accounts: %w", err)
	}
	return nil
}

// ApplyBalanceDelta adds delta to the stored balance with a single UPDATE and
// returns the new balance as seen by the current transaction. Hooks and
// validation are bypassed. A missing row yields ErrStaleAccountReference.
func (r *accountRepository) ApplyBalanceDelta(id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	result := r.db.Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("ROUND(balance + ?, ?)", delta, models.AmountScale),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return decimal.Zero, fmt.Errorf("failed to apply balance delta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, ErrStaleAccountReference
	}

	var row struct {
		Balance decimal.Decimal
	}
	if err := r.db.Model(&models.Account{}).
		Select("balance").
		Where("id = ?", id).
		Limit(1).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to read balance: %w", err)
	}

	return row.Balance, nil
}

// TotalBalance sums the cached balances of every account of the user
func (r *accountRepository) TotalBalance(userID uuid.UUID) (decimal.Decimal, error) {
	var row decimalRow
	if err := r.db.Model(&models.Account{}).
		Select("COALESCE(SUM(balance), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total balance: %w", err)
	}
	return row.value(), nil
}
