package commands

import (
	"errors"

	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/errs"
)

// fromRepo maps repository failures onto use-case error kinds. Already tagged
// errors pass through unchanged.
func fromRepo(err error, msg string) error {
	if err == nil {
		return nil
	}
	var tagged *errs.Error
	if errors.As(err, &tagged) {
		return err
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.E(errs.KindNotFound, msg).WithCause(err)
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		return errs.E(errs.KindConflict, msg).WithCause(err)
	default:
		return errs.E(errs.KindPersistence, msg).WithCause(err)
	}
}

func invalid(err error) error {
	return errs.E(errs.KindInvalidRequest, err.Error()).WithCause(err)
}

func external(msg string, err error) error {
	return errs.E(errs.KindExternalService, msg).WithCause(err)
}
