package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/database/migrations"
	"ondernemercentraal.nl/database/seeders"
)

// Initialize runs migrations and seeders in one transaction, so a partially
// provisioned database never survives a failure.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Geen migrate- of seed-vlag opgegeven, er wordt niets uitgevoerd.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Databasetransactie kon niet worden gestart", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database-initialisatie mislukt (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Initialisatie wordt teruggedraaid vanwege een fout.", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Extra fout tijdens rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database-initialisatie gestart...")

	if migrate {
		configslog.SLog.Info("Migraties worden uitgevoerd...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migratie mislukt", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migraties afgerond.")
	}

	if seed {
		configslog.SLog.Info("Seeders worden uitgevoerd...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding mislukt", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders afgerond.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit mislukt", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database-initialisatie succesvol afgerond.")
}

// RunMigrationsInOrder migrates every table group in dependency order.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"clients", migrations.MigrateClientsTable},
		{"cases", migrations.MigrateCasesTable},
		{"catalogus", migrations.MigrateCatalogTables},
		{"tracks", migrations.MigrateTracksTable},
		{"appointments", migrations.MigrateAppointmentsTable},
		{"tasks", migrations.MigrateTasksTable},
		{"availability", migrations.MigrateAvailabilityTables},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> Migratie '%s' wordt uitgevoerd...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migratie mislukt", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("Alle migraties succesvol uitgevoerd.")
	return nil
}

// CheckAndRunSeeders runs every idempotent seeder. Catalogue rows and the
// default availability definition are invariants; slot computation refuses to
// run without them.
func CheckAndRunSeeders(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"systeemgebruiker", seeders.SeedSystemUser},
		{"trajecttypen", seeders.SeedTrackTypes},
		{"gesprekstypen", seeders.SeedAppointmentTypes},
		{"producten", seeders.SeedProducts},
		{"partnerorganisaties", seeders.SeedPartnerOrganizations},
		{"beschikbaarheid", seeders.SeedDefaultAvailability},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> Seeder '%s' wordt uitgevoerd...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Seeder mislukt", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("Alle seeders succesvol gecontroleerd/uitgevoerd.")
	return nil
}
