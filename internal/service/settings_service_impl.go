package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/domain"
	"github.com/alexanderramin/timbang/internal/importer"
	"github.com/alexanderramin/timbang/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		settings: settings,
		uow:      uow,
		clock:    clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context, owner string) (*domain.WorkSettings, error) {
	var out *domain.WorkSettings
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = getOrCreateSettings(ctx, repository.NewSQLiteSettingsRepo(tx), owner, storedNow(s.clock))
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *settingsService) Update(ctx context.Context, owner string, settings *domain.WorkSettings) (out *domain.WorkSettings, err error) {
	defer observe(ctx, s.observer, "update-settings", time.Now(), map[string]any{"owner": owner}, &err)

	updated := *settings
	updated.Owner = owner
	if err = updated.Validate(); err != nil {
		return nil, err
	}
	updated.UpdatedAt = storedNow(s.clock)
	if err = s.settings.Upsert(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *settingsService) Patch(ctx context.Context, owner string, patch *importer.SettingsImport) (out *domain.WorkSettings, err error) {
	defer observe(ctx, s.observer, "patch-settings", time.Now(), map[string]any{"owner": owner}, &err)

	now := storedNow(s.clock)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSettings := repository.NewSQLiteSettingsRepo(tx)

		current, err := getOrCreateSettings(ctx, txSettings, owner, now)
		if err != nil {
			return err
		}
		if patch != nil {
			if current, err = importer.ApplySettings(current, patch); err != nil {
				return err
			}
		}
		current.UpdatedAt = now
		if err := txSettings.Upsert(ctx, current); err != nil {
			return err
		}
		out = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// getOrCreateSettings loads the settings of owner, storing the defaults when
// none exist yet.
func getOrCreateSettings(ctx context.Context, repo repository.SettingsRepo, owner string, now time.Time) (*domain.WorkSettings, error) {
	settings, err := repo.Get(ctx, owner)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	settings = domain.DefaultWorkSettings(owner)
	settings.UpdatedAt = now
	if err := repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// loadSettings returns the stored settings of owner or the defaults without
// persisting them.
func loadSettings(ctx context.Context, repo repository.SettingsRepo, owner string) (*domain.WorkSettings, error) {
	settings, err := repo.Get(ctx, owner)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultWorkSettings(owner), nil
	}
	return settings, err
}
