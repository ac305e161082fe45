// Package settings contains settings management use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// GetSettingsInput represents the input for retrieving settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the retrieved settings.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase retrieves the user's budget settings, creating the
// defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the settings for the given user.
func (uc *GetSettingsUseCase) Execute(
	ctx context.Context,
	input GetSettingsInput,
) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}

		settings = entity.DefaultSettings(input.UserID)
		if err := uc.settingsRepo.Save(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	return &GetSettingsOutput{Settings: settings}, nil
}
