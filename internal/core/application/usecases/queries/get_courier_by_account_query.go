package queries

import (
	"errors"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/pkg/guard"
)

var ErrGetCourierByAccountQueryIsNotConstructed = errors.New(
	"GetCourierByAccountQuery must be created via NewGetCourierByAccountQuery constructor",
)

// GetCourierByAccountQuery resolves the courier profile backing a user
// account. The courier app calls this after sign-in.
type GetCourierByAccountQuery struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierByAccountQuery creates a profile lookup query.
func NewGetCourierByAccountQuery(accountID kernel.UUID) (GetCourierByAccountQuery, error) {
	query := GetCourierByAccountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAccountID(accountID); err != nil {
		return GetCourierByAccountQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierByAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierByAccountQueryIsNotConstructed)
}

// AccountID returns the account ID from the query.
func (q GetCourierByAccountQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q *GetCourierByAccountQuery) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	q.accountID = accountID
	return nil
}
