package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/timbang/internal/db"
	"github.com/alexanderramin/timbang/internal/importer"
	"github.com/alexanderramin/timbang/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

// NewImportService creates an ImportService. All writes of one import share
// a single transaction.
func NewImportService(uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		clock:    clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, owner, filePath string, loc *time.Location) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, owner, schema, loc, false)
}

func (s *importService) ImportSessions(ctx context.Context, owner string, r io.Reader, loc *time.Location) (*ImportResult, error) {
	schema, err := importer.DecodeSchema(r)
	if err != nil {
		return nil, err
	}
	return s.importSchema(ctx, owner, schema, loc, false)
}

func (s *importService) ImportLegacyEntries(ctx context.Context, owner string, r io.Reader, loc *time.Location) (*ImportResult, error) {
	entries, err := importer.DecodeEntries(r)
	if err != nil {
		return nil, err
	}
	return s.importSchema(ctx, owner, &importer.ImportSchema{Entries: entries}, loc, true)
}

func (s *importService) ImportFromSchema(ctx context.Context, owner string, schema *importer.ImportSchema, loc *time.Location) (*ImportResult, error) {
	return s.importSchema(ctx, owner, schema, loc, false)
}

func (s *importService) importSchema(ctx context.Context, owner string, schema *importer.ImportSchema, loc *time.Location, keepEntries bool) (result *ImportResult, err error) {
	fields := map[string]any{"owner": owner}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	loc = locationOrLocal(loc)
	if errs := importer.ValidateImportSchema(schema, loc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(schema, owner, loc, storedNow(s.clock))
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	var entries []importer.EntryImport
	if keepEntries {
		entries = schema.Entries
	}

	result = &ImportResult{OrphanedClockOuts: converted.OrphanedClockOuts}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txSettings := repository.NewSQLiteSettingsRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)

		for _, sess := range converted.Sessions {
			if err := txSessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("creating session starting %s: %w", sess.StartTime.Format(time.RFC3339), err)
			}
			if sess.IsOpen() {
				result.OpenSessionCount++
			}
		}
		result.SessionCount = len(converted.Sessions)

		if len(entries) > 0 {
			domainEntries, err := importer.ConvertEntries(entries, owner, loc)
			if err != nil {
				return err
			}
			for i := range domainEntries {
				// Imported ids are only meaningful within the file.
				domainEntries[i].ID = 0
				if err := txEntries.Create(ctx, &domainEntries[i]); err != nil {
					return err
				}
			}
			result.EntryCount = len(domainEntries)
		}

		if converted.Settings != nil {
			if err := txSettings.Upsert(ctx, converted.Settings); err != nil {
				return fmt.Errorf("storing settings: %w", err)
			}
			result.SettingsImported = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["sessions"] = result.SessionCount
	fields["entries"] = result.EntryCount
	fields["orphaned_clock_outs"] = result.OrphanedClockOuts
	return result, nil
}
