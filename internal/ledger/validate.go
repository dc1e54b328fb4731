package ledger

import (
	"strconv"
	"strings"

	"github.com/pennywise-app/pennywise/internal/common"
)

// MaxAmount is the largest amount a single expense may carry. Anything above
// it is almost certainly a typo.
const MaxAmount = 1_000_000

// Validate checks raw form input before an expense is constructed or amended.
// It is pure and has no side effects. The checks run in order: description
// first, then amount parse, then magnitude.
func Validate(amountText, descriptionText string) error {
	if strings.TrimSpace(descriptionText) == "" {
		return common.ErrEmptyDescription
	}

	// The positive check is written so NaN fails it too; ParseFloat accepts
	// "NaN" and NaN compares false against everything.
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || !(amount > 0) {
		return common.ErrInvalidAmount
	}

	if amount > MaxAmount {
		return common.ErrAmountTooLarge
	}

	return nil
}
