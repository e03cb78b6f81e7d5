package rf

import (
	"context"
	"errors"

	"liyu1981.xyz/rf-code-hub/pkg/models"
)

// resolveAvailability re-reads both stores on every call; nothing is cached
// across events.
func (r *RF) resolveAvailability(ctx context.Context, code string) (models.Availability, error) {
	record, err := r.Codes.Get(ctx, code)
	if errors.Is(err, ErrCodeNotFound) {
		return models.Availability{Ignored: true}, nil
	}
	if err != nil {
		return models.Availability{}, err
	}
	if record.Ignored {
		return models.Availability{Ignored: true}, nil
	}

	owner, err := r.Cards.FindByCode(ctx, code)
	if err != nil {
		return models.Availability{}, err
	}
	if owner != nil {
		return models.Availability{AssignedTo: owner.Shortname}, nil
	}

	return models.Availability{Available: true}, nil
}

type IAvailabilityImpl struct {
	rf *RF
}

func (ia *IAvailabilityImpl) Resolve(ctx context.Context, code string) (models.Availability, error) {
	return ia.rf.resolveAvailability(ctx, code)
}

func (r *RF) GetIAvailability() IAvailability {
	return &IAvailabilityImpl{rf: r}
}
