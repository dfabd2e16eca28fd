package service

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

// WizardService persists onboarding wizard progress. The organization wizard
// is keyed by organization id, the user wizard by profile id.
type WizardService struct {
	repo repository.WizardRepositoryInterface
}

// NewWizardService creates a new WizardService
func NewWizardService(repo repository.WizardRepositoryInterface) *WizardService {
	return &WizardService{repo: repo}
}

// WizardState is the current position of one wizard
type WizardState struct {
	Scope        models.WizardScope `json:"scope"`
	Step         int                `json:"step"`
	TerminalStep int                `json:"terminal_step"`
	Complete     bool               `json:"complete"`
}

// Get returns the stored step, 0 when nothing is stored
func (s *WizardService) Get(ctx context.Context, actor Actor, scope models.WizardScope) (*WizardState, error) {
	owner, err := wizardOwner(actor, scope)
	if err != nil {
		return nil, err
	}
	progress, err := s.repo.Get(ctx, scope, owner)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return newWizardState(scope, 0), nil
	}
	return newWizardState(scope, progress.Step), nil
}

// Advance moves one step forward; at the terminal step it does nothing
func (s *WizardService) Advance(ctx context.Context, actor Actor, scope models.WizardScope) (*WizardState, error) {
	current, err := s.Get(ctx, actor, scope)
	if err != nil {
		return nil, err
	}
	if current.Complete {
		return current, nil
	}
	return s.SetStep(ctx, actor, scope, current.Step+1)
}

// SetStep stores step, which must be within 0 and the terminal step
func (s *WizardService) SetStep(ctx context.Context, actor Actor, scope models.WizardScope, step int) (*WizardState, error) {
	owner, err := wizardOwner(actor, scope)
	if err != nil {
		return nil, err
	}
	if step < 0 || step > scope.TerminalStep() {
		return nil, apperrors.ErrInvalidWizardStep
	}
	if err := s.repo.Save(ctx, &models.WizardProgress{Scope: scope, OwnerID: owner, Step: step}); err != nil {
		return nil, err
	}
	return newWizardState(scope, step), nil
}

// Reset forgets the stored progress
func (s *WizardService) Reset(ctx context.Context, actor Actor, scope models.WizardScope) error {
	owner, err := wizardOwner(actor, scope)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, scope, owner)
}

func wizardOwner(actor Actor, scope models.WizardScope) (uuid.UUID, error) {
	switch scope {
	case models.WizardScopeOrganization:
		return actor.OrganizationID, nil
	case models.WizardScopeUser:
		return actor.UserID, nil
	}
	return uuid.Nil, apperrors.ErrInvalidWizardScope
}

func newWizardState(scope models.WizardScope, step int) *WizardState {
	terminal := scope.TerminalStep()
	if step > terminal {
		step = terminal
	}
	return &WizardState{
		Scope:        scope,
		Step:         step,
		TerminalStep: terminal,
		Complete:     step >= terminal,
	}
}
