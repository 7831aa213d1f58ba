package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner-api/internal/dto"
	"github.com/noah-isme/study-planner-api/internal/filter"
	"github.com/noah-isme/study-planner-api/internal/models"
	"github.com/noah-isme/study-planner-api/internal/repository"
	appErrors "github.com/noah-isme/study-planner-api/pkg/errors"
)

type recordStore[R any] interface {
	List(ctx context.Context, q filter.Query) ([]R, error)
	FindByID(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, record *R) error
	Update(ctx context.Context, record *R) error
	Delete(ctx context.Context, id string) error
}

// CreatePayload builds a new record owned by the caller.
type CreatePayload[R any] interface {
	Build(ownerID string) *R
}

// PatchPayload merges the fields present in an update request into a record.
type PatchPayload[R any] interface {
	Apply(record *R) error
	ExpectedVersion() *int
}

type mutationRecorder interface {
	RecordMutation(resource, action string)
}

// ResourceSpec describes one owner-scoped record kind.
type ResourceSpec[R any] struct {
	// Name is the singular display name, e.g. "Event".
	Name      string
	Filter    filter.Definition
	Normalize func(record *R)
	// Check enforces cross-field invariants after field validation. Optional.
	Check func(record *R) error
}

// ResourceService implements list, get, create, update and delete for one record kind.
type ResourceService[R models.Owned, C CreatePayload[R], P PatchPayload[R]] struct {
	spec      ResourceSpec[R]
	store     recordStore[R]
	validator *validator.Validate
	logger    *zap.Logger
	metrics   mutationRecorder
	now       func() time.Time
}

// NewResourceService constructs a ResourceService.
func NewResourceService[R models.Owned, C CreatePayload[R], P PatchPayload[R]](spec ResourceSpec[R], store recordStore[R], validate *validator.Validate, logger *zap.Logger, metrics mutationRecorder) *ResourceService[R, C, P] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &ResourceService[R, C, P]{
		spec:      spec,
		store:     store,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Name returns the singular display name of the resource.
func (s *ResourceService[R, C, P]) Name() string {
	return s.spec.Name
}

// List returns the caller's records matching params in the resource's order.
func (s *ResourceService[R, C, P]) List(ctx context.Context, callerID string, params url.Values) ([]R, error) {
	owner := NormalizeOwnerID(callerID)
	if owner == "" {
		return nil, appErrors.ErrUnauthorized
	}
	q, err := s.spec.Filter.Build(owner, params, s.now())
	if err != nil {
		var paramErr *filter.ParamError
		if errors.As(err, &paramErr) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, paramErr.Error())
		}
		return nil, appErrors.Internal(err, fmt.Sprintf("failed to list %s", s.plural()))
	}
	records, err := s.store.List(ctx, q)
	if err != nil {
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to list %s", s.plural()))
	}
	return records, nil
}

// Get returns one record owned by the caller.
func (s *ResourceService[R, C, P]) Get(ctx context.Context, callerID, id string) (*R, error) {
	return s.load(ctx, callerID, id, "view")
}

// Create validates payload and stores it as a new record owned by the caller.
func (s *ResourceService[R, C, P]) Create(ctx context.Context, callerID string, payload C) (*R, error) {
	owner := NormalizeOwnerID(callerID)
	if owner == "" {
		return nil, appErrors.ErrUnauthorized
	}
	record := payload.Build(owner)
	if err := s.prepare(record); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, record); err != nil {
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to create %s", s.noun()))
	}
	s.recorded("create", *record)
	return record, nil
}

// Update merges patch into the caller's record and saves it if the stored version is unchanged.
func (s *ResourceService[R, C, P]) Update(ctx context.Context, callerID, id string, patch P) (*R, error) {
	record, err := s.load(ctx, callerID, id, "update")
	if err != nil {
		return nil, err
	}
	if expected := patch.ExpectedVersion(); expected != nil && *expected != (*record).RecordVersion() {
		return nil, s.conflict()
	}
	if err := patch.Apply(record); err != nil {
		return nil, patchError(err)
	}
	if err := s.prepare(record); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, s.conflict()
		}
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to update %s", s.noun()))
	}
	s.recorded("update", *record)
	return record, nil
}

// Delete removes the caller's record.
func (s *ResourceService[R, C, P]) Delete(ctx context.Context, callerID, id string) error {
	record, err := s.load(ctx, callerID, id, "delete")
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.notFound()
		}
		return s.storeError(ctx, err, fmt.Sprintf("failed to delete %s", s.noun()))
	}
	s.recorded("delete", *record)
	return nil
}

// load fetches id and applies the ownership guard. Not-found is decided before ownership.
func (s *ResourceService[R, C, P]) load(ctx context.Context, callerID, id, action string) (*R, error) {
	if NormalizeOwnerID(callerID) == "" {
		return nil, appErrors.ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, s.notFound()
	}
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound()
		}
		return nil, s.storeError(ctx, err, fmt.Sprintf("failed to load %s", s.noun()))
	}
	if err := AuthorizeOwner(*record, callerID); err != nil {
		s.logger.Warn("ownership check failed",
			zap.String("resource", s.noun()),
			zap.String("id", id),
			zap.String("caller_id", NormalizeOwnerID(callerID)),
		)
		return nil, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("Not authorized to %s this %s", action, s.noun()))
	}
	return record, nil
}

func (s *ResourceService[R, C, P]) prepare(record *R) error {
	if s.spec.Normalize != nil {
		s.spec.Normalize(record)
	}
	if err := s.validator.Struct(record); err != nil {
		return validationError(err)
	}
	if s.spec.Check != nil {
		if err := s.spec.Check(record); err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
		}
	}
	return nil
}

// storeError maps a store failure to a client error. The driver may report an expired
// request deadline as a cancelled statement, so ctx is consulted as well as err.
func (s *ResourceService[R, C, P]) storeError(ctx context.Context, err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return appErrors.Wrap(err, appErrors.ErrTimeout.Code, appErrors.ErrTimeout.Status, appErrors.ErrTimeout.Message)
	}
	s.logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}

func (s *ResourceService[R, C, P]) recorded(action string, record R) {
	s.logger.Info(s.noun()+" "+action+"d",
		zap.String("id", record.RecordID()),
		zap.String("caller_id", record.OwnerID()),
	)
	if s.metrics != nil {
		s.metrics.RecordMutation(s.noun(), action)
	}
}

func (s *ResourceService[R, C, P]) notFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, s.spec.Name+" not found")
}

func (s *ResourceService[R, C, P]) conflict() error {
	return appErrors.Clone(appErrors.ErrConflict, s.spec.Name+" was modified by another request; reload and retry")
}

func (s *ResourceService[R, C, P]) noun() string {
	return strings.ToLower(s.spec.Name)
}

func (s *ResourceService[R, C, P]) plural() string {
	return s.noun() + "s"
}

func patchError(err error) error {
	var fieldErr *dto.FieldError
	var transitionErr *models.StatusTransitionError
	switch {
	case errors.As(err, &fieldErr), errors.As(err, &transitionErr):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	default:
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}
}
