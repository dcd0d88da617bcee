package validators

import (
	"slices"

	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Количество знаков после запятой в сумме (центы)
const AmountPrecision = 2

// MaxAmount - наибольшая сумма, которую вмещает NUMERIC(18, 2) в хранилище
var MaxAmount = decimal.RequireFromString("9999999999999999.99")

// CheckAmount проверяет, что сумма положительная, не больше MaxAmount и не содержит долей цента
func CheckAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return false
	}
	return amount.Equal(amount.Round(AmountPrecision))
}

// CheckStatus проверяет, что статус заявки входит в допустимый набор
func CheckStatus(status string) bool {
	return slices.Contains(models.CashOutStatuses, status)
}

// CheckRequestID проверяет формат идентификатора заявки
func CheckRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
