package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"
	"budgetbuddy/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// newTestContext builds a context for a handler call. A nil userID leaves the
// request unauthenticated.
func newTestContext(e *echo.Echo, method, target string, body interface{}, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(UserIDContextKey, *userID)
	}
	return c, rec
}

func decodeError(s *suite.Suite, rec *httptest.ResponseRecorder) errors.ErrorDetail {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	userID      uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func (s *TransactionHandlerSuite) sampleTransaction() *models.Transaction {
	return &models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		AccountID:   uuid.New(),
		Direction:   models.DirectionExpense,
		Amount:      decimal.RequireFromString("12.50"),
		Currency:    "USD",
		Description: gofakeit.Sentence(3),
	}
}

func (s *TransactionHandlerSuite) TestListTransactions_ParsesFilters() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		ListTransactions(s.userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(models.DirectionExpense, filters.Direction)
			s.Require().NotNil(filters.DateFrom)
			s.Equal("2024-01-01", filters.DateFrom.Format("2006-01-02"))
			s.Require().NotNil(filters.MinAmount)
			s.Equal("5", filters.MinAmount.String())
			s.Require().NotNil(filters.AccountID)
			s.Equal(accountID, *filters.AccountID)
			s.Require().NotNil(filters.IsPending)
			s.False(*filters.IsPending)
			s.Equal("-amount", filters.Ordering)
			s.Equal(10, filters.Limit)
			s.Equal(20, filters.Offset)
			return []models.Transaction{*s.sampleTransaction()}, 41, nil
		})

	target := "/transactions?direction=expense&date_gte=2024-01-01&amount_gte=5&account=" + accountID.String() +
		"&is_pending=false&ordering=-amount&limit=10&offset=20"
	c, rec := newTestContext(s.echo, http.MethodGet, target, nil, &s.userID)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.PaginatedResponse[models.Transaction]
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Results, 1)
	s.Equal(int64(41), resp.Total)
	s.Equal(10, resp.Limit)
	s.Equal(20, resp.Offset)
}

func (s *TransactionHandlerSuite) TestListTransactions_ReportsEveryBadParameter() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/transactions?direction=sideways&date_gte=yesterday&account=nope", nil, &s.userID)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	detail := decodeError(&s.Suite, rec)
	s.Equal(string(errors.ValidationInvalidQuery), detail.Code)
	s.Len(detail.Details, 3)
	s.True(strings.HasPrefix(detail.Details[0], "account:"))
}

func (s *TransactionHandlerSuite) TestListTransactions_InvertedDateRange() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/transactions?date_gte=2024-02-01&date_lte=2024-01-01", nil, &s.userID)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(&s.Suite, rec).Details, "date_lte: Must not be before date_gte.")
}

func (s *TransactionHandlerSuite) TestListTransactions_InvalidOrdering() {
	s.mockService.EXPECT().
		ListTransactions(s.userID, gomock.Any()).
		Return(nil, int64(0), services.ErrInvalidOrdering)

	c, rec := newTestContext(s.echo, http.MethodGet, "/transactions?ordering=balance", nil, &s.userID)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidQuery), decodeError(&s.Suite, rec).Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	accountID := uuid.New()
	created := s.sampleTransaction()
	created.AccountID = accountID

	s.mockService.EXPECT().
		CreateTransaction(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.TransactionRequest, _, _ string) (*models.Transaction, error) {
			s.Equal(models.DirectionExpense, req.Direction)
			s.Equal("12.5", req.Amount.String())
			s.Equal(accountID, *req.AccountID)
			return created, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/transactions", map[string]interface{}{
		"account_id": accountID,
		"direction":  models.DirectionExpense,
		"amount":     "12.50",
	}, &s.userID)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp models.Transaction
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(created.ID, resp.ID)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_RejectsUnknownDirection() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/transactions", map[string]interface{}{
		"direction": "sideways",
		"amount":    "1.00",
	}, &s.userID)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), decodeError(&s.Suite, rec).Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ValidationErrors() {
	tests := []struct {
		name   string
		fields []services.FieldError
		status int
		code   errors.ErrorCode
	}{
		{
			name:   "currency mismatch",
			fields: []services.FieldError{{Field: "currency", Err: services.ErrCurrencyMismatch}},
			status: http.StatusUnprocessableEntity,
			code:   errors.TransactionCurrencyMismatch,
		},
		{
			name:   "category direction",
			fields: []services.FieldError{{Field: "category_id", Err: services.ErrCategoryDirectionMismatch}},
			status: http.StatusUnprocessableEntity,
			code:   errors.TransactionCategoryDirectionMismatch,
		},
		{
			name:   "invalid amount",
			fields: []services.FieldError{{Field: "amount", Err: services.ErrInvalidAmount}},
			status: http.StatusBadRequest,
			code:   errors.TransactionInvalidAmount,
		},
		{
			name:   "foreign account",
			fields: []services.FieldError{{Field: "account_id", Err: services.ErrCrossOwnership}},
			status: http.StatusForbidden,
			code:   errors.TransactionCrossOwnership,
		},
		{
			name:   "unknown reference",
			fields: []services.FieldError{{Field: "category_id", Err: services.ErrReferenceNotFound}},
			status: http.StatusBadRequest,
			code:   errors.ValidationGeneral,
		},
		{
			name: "several fields",
			fields: []services.FieldError{
				{Field: "currency", Err: services.ErrCurrencyMismatch},
				{Field: "amount", Err: services.ErrInvalidAmount},
			},
			status: http.StatusUnprocessableEntity,
			code:   errors.TransactionValidationFailed,
		},
		{
			name: "several fields with foreign category",
			fields: []services.FieldError{
				{Field: "amount", Err: services.ErrInvalidAmount},
				{Field: "category_id", Err: services.ErrCrossOwnership},
			},
			status: http.StatusForbidden,
			code:   errors.TransactionCrossOwnership,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.EXPECT().
				CreateTransaction(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, &services.TransactionValidationError{Fields: tt.fields})

			c, rec := newTestContext(s.echo, http.MethodPost, "/transactions", map[string]interface{}{
				"direction": models.DirectionExpense,
				"amount":    "1.00",
			}, &s.userID)

			s.Require().NoError(s.handler.CreateTransaction(c))
			s.Equal(tt.status, rec.Code)

			detail := decodeError(&s.Suite, rec)
			s.Equal(string(tt.code), detail.Code)
			s.Len(detail.Details, len(tt.fields))
		})
	}
}

func (s *TransactionHandlerSuite) TestGetTransaction() {
	txn := s.sampleTransaction()
	s.mockService.EXPECT().GetTransaction(s.userID, txn.ID).Return(txn, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, &s.userID)
	s.Require().NoError(s.handler.GetTransaction(s.withID(c, txn.ID.String())))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().GetTransaction(s.userID, id).Return(nil, services.ErrTransactionNotFound)

	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, &s.userID)
	s.Require().NoError(s.handler.GetTransaction(s.withID(c, id.String())))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.TransactionNotFound), decodeError(&s.Suite, rec).Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_InvalidID() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, &s.userID)
	s.Require().NoError(s.handler.GetTransaction(s.withID(c, "not-a-uuid")))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationInvalidFormat), decodeError(&s.Suite, rec).Code)
}

func (s *TransactionHandlerSuite) TestPatchTransaction() {
	txn := s.sampleTransaction()
	s.mockService.EXPECT().
		PatchTransaction(gomock.Any(), s.userID, txn.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *dto.TransactionPatchRequest, _, _ string) (*models.Transaction, error) {
			s.Require().NotNil(req.Amount)
			s.Equal("30", req.Amount.String())
			s.Nil(req.Direction)
			return txn, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPatch, "/", map[string]interface{}{"amount": "30"}, &s.userID)
	s.Require().NoError(s.handler.PatchTransaction(s.withID(c, txn.ID.String())))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	id := uuid.New()
	s.mockService.EXPECT().DeleteTransaction(gomock.Any(), s.userID, id, gomock.Any(), gomock.Any()).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/", nil, &s.userID)
	s.Require().NoError(s.handler.DeleteTransaction(s.withID(c, id.String())))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction_StaleAccount() {
	id := uuid.New()
	s.mockService.EXPECT().
		DeleteTransaction(gomock.Any(), s.userID, id, gomock.Any(), gomock.Any()).
		Return(services.ErrStaleAccountReference)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/", nil, &s.userID)
	s.Require().NoError(s.handler.DeleteTransaction(s.withID(c, id.String())))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetTransactionHistory_EmptyIsArray() {
	id := uuid.New()
	s.mockService.EXPECT().GetTransactionHistory(s.userID, id).Return(nil, nil)

	c, rec := newTestContext(s.echo, http.MethodGet, "/", nil, &s.userID)
	s.Require().NoError(s.handler.GetTransactionHistory(s.withID(c, id.String())))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *TransactionHandlerSuite) TestRequiresUser() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/transactions", nil, nil)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), decodeError(&s.Suite, rec).Code)
}
