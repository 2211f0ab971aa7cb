package commands

import (
	"context"
	"log/slog"

	"closeout-market/internal/domain/store"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterStoreInput struct {
	Name      string
	Address   string
	BizNumber string
}

type VerifyStoreInput struct {
	OwnerName string
	StartDate string
}

type StoreCommands interface {
	Register(ctx context.Context, principal user.Principal, input RegisterStoreInput) (uuid.UUID, error)
	Verify(ctx context.Context, principal user.Principal, storeID uuid.UUID, input VerifyStoreInput) error
}

type storeCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier shared.BusinessVerifier
	clock    clock.Clock
	cfg      config.CollaboratorsConfig
}

func NewStoreCommands(
	uow shared.UnitOfWork,
	verifier shared.BusinessVerifier,
	clk clock.Clock,
	cfg config.CollaboratorsConfig,
) StoreCommands {
	return &storeCommandsImpl{uow: uow, verifier: verifier, clock: clk, cfg: cfg}
}

func (s *storeCommandsImpl) Register(ctx context.Context, principal user.Principal, input RegisterStoreInput) (uuid.UUID, error) {
	if !principal.IsAuthenticated() {
		return uuid.Nil, errs.ErrUnauthenticated
	}
	if !principal.CanSell() {
		return uuid.Nil, errs.Mark(errs.New("only sellers can register a store"), errs.ErrForbidden)
	}

	entity, err := store.NewStore(principal.ID(), input.Name, input.Address, input.BizNumber, s.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	var id uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Stores().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrStoreAlreadyExists)
		}
		return uuid.Nil, classifyStoreErr(err)
	}
	return id, nil
}

func (s *storeCommandsImpl) Verify(ctx context.Context, principal user.Principal, storeID uuid.UUID, input VerifyStoreInput) error {
	if !principal.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}

	st, err := s.uow.CommandReads().StoreByID(ctx, storeID)
	if err != nil {
		return classifyStoreErr(err)
	}
	if st.OwnerID() != principal.ID() && principal.Role() != user.RoleAdmin {
		return errs.Mark(errs.New("not the owner of this store"), errs.ErrForbidden)
	}
	if st.IsVerified() {
		return nil
	}

	reg, err := store.NewRegistration(st.BizNumber(), input.OwnerName, input.StartDate)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidInput)
	}

	vctx := ctx
	if s.cfg.VerifierTimeout > 0 {
		var cancel context.CancelFunc
		vctx, cancel = context.WithTimeout(ctx, s.cfg.VerifierTimeout)
		defer cancel()
	}
	ok, err := s.verifier.Verify(vctx, reg)
	if err != nil {
		slog.Warn("business verification call failed",
			slog.String("store_id", storeID.String()),
			sl.Err(err))
		return errs.Mark(err, errs.ErrUnavailable)
	}
	if !ok {
		return ErrVerificationFailed
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Stores().MarkVerified(ctx, tx.DB(), storeID, s.clock.Now())
	})
	return classifyStoreErr(err)
}
