package transformer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/zmsync/go-mtbank-sync/internal/common"
	"github.com/zmsync/go-mtbank-sync/internal/models"
)

// Deposit metadata only exists as free text in the product details blob.
var (
	depositOpenedRe  = regexp.MustCompile(`(?i)Дата открытия:\s(.[0-9.]*)`)
	depositDueRe     = regexp.MustCompile(`(?i)Срок возврата вклада:\s(.[0-9.]*)`)
	depositPercentRe = regexp.MustCompile(`(?i)Процентная ставка:.*\s(.[0-9]*)%`)
)

// ConvertAccounts maps the raw product list to canonical accounts. Products
// of types the model does not know are skipped.
func ConvertAccounts(products []models.Product) ([]models.Account, error) {
	var accounts []models.Account
	for _, product := range products {
		account, err := ConvertAccount(product)
		if err != nil {
			return nil, err
		}
		if account != nil {
			accounts = append(accounts, *account)
		}
	}
	return accounts, nil
}

// ConvertAccount maps one raw product to a canonical account, or nil for
// product types without a canonical shape.
func ConvertAccount(product models.Product) (*models.Account, error) {
	switch models.AccountType(product.Type) {
	case models.AccountTypeDeposit:
		return convertDeposit(product)
	case models.AccountTypeCard:
		return convertCard(product)
	default:
		return nil, nil
	}
}

func convertDeposit(product models.Product) (*models.Account, error) {
	start, err := matchBankDate(depositOpenedRe, product.Details)
	if err != nil {
		return nil, fmt.Errorf("deposit %s: open date: %w", product.ID, err)
	}

	stop, err := matchBankDate(depositDueRe, product.Details)
	if err != nil {
		return nil, fmt.Errorf("deposit %s: due date: %w", product.ID, err)
	}

	m := depositPercentRe.FindStringSubmatch(product.Details)
	if m == nil {
		return nil, fmt.Errorf("deposit %s: interest rate not found in details", product.ID)
	}
	percent, err := common.NewDecimalFromBankString(m[1])
	if err != nil {
		return nil, fmt.Errorf("deposit %s: interest rate: %w", product.ID, err)
	}

	balance, err := common.NewDecimalFromBankString(product.Balance)
	if err != nil {
		return nil, fmt.Errorf("deposit %s: balance: %w", product.ID, err)
	}

	depositDays := int(stop.Sub(start).Hours() / 24)

	return &models.Account{
		ID:                    product.ID,
		Type:                  models.AccountTypeDeposit,
		Title:                 product.Name,
		Instrument:            product.Currency,
		Balance:               balance,
		SyncIDs:               []string{product.ID},
		Capitalization:        true,
		Percent:               percent,
		StartDate:             start,
		EndDateOffset:         depositDays,
		EndDateOffsetInterval: "day",
		PayoffStep:            1,
		PayoffInterval:        "month",
	}, nil
}

func convertCard(product models.Product) (*models.Account, error) {
	balance, err := common.NewDecimalFromBankString(product.Balance)
	if err != nil {
		return nil, fmt.Errorf("card %s: balance: %w", product.ID, err)
	}

	id := strings.ReplaceAll(product.ID, " ", "")
	last4 := product.CardNum
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	return &models.Account{
		ID:         id,
		Type:       models.AccountTypeCard,
		Title:      "Карта " + last4,
		Instrument: product.Currency,
		Balance:    balance,
		SyncIDs:    []string{id, last4},
	}, nil
}

func matchBankDate(re *regexp.Regexp, details string) (time.Time, error) {
	m := re.FindStringSubmatch(details)
	if m == nil {
		return time.Time{}, fmt.Errorf("pattern %s not found in details", re.String())
	}
	return common.ParseBankDate(m[1])
}
