package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"cartridge/config"
	"cartridge/utils"
)

var (
	ErrGameNotFound  = errors.New("game not found in configuration")
	ErrNoBackup      = errors.New("no backup found for game")
	ErrSourceMissing = errors.New("save path does not exist")
)

// Service drives backup and restore for the games of one loaded
// configuration. The configuration and the resolved variable scope are
// built once and read-only afterwards.
type Service struct {
	log  *zap.Logger
	cfg  *config.Config
	vars map[string]string

	anon       anonymizer
	backupRoot string
}

// FromConfig builds a Service for the given configuration. The backup
// tree is rooted next to the configuration file, and the variable scope
// is resolved up front so later operations cannot fail on expansion of
// user variables themselves.
func FromConfig(cfg *config.Config, configFile string, log *zap.Logger) (*Service, error) {
	vars, err := config.BuildScope(cfg, log)
	if err != nil {
		return nil, err
	}

	backupRoot := filepath.Join(filepath.Dir(configFile), "backup")
	log.Debug("backup root", zap.String("path", backupRoot))

	return &Service{
		log:        log,
		cfg:        cfg,
		vars:       vars,
		anon:       anonymizer{home: vars["home"]},
		backupRoot: backupRoot,
	}, nil
}

// BackupRoot returns the root of the backup tree.
func (s *Service) BackupRoot() string { return s.backupRoot }

// Vars returns the resolved variable scope.
func (s *Service) Vars() map[string]string { return s.vars }

// Games returns the enabled games in document order.
func (s *Service) Games() []*config.Game {
	games := make([]*config.Game, 0, len(s.cfg.Games))
	for _, game := range s.cfg.Games {
		if game.IsEnabled() {
			games = append(games, game)
		}
	}
	return games
}

// HasBackup reports whether a backup directory exists for the game.
func (s *Service) HasBackup(gameName string) bool {
	_, err := os.Stat(filepath.Join(s.backupRoot, gameName))
	return err == nil
}

func (s *Service) findGame(gameName string) (*config.Game, error) {
	for _, game := range s.cfg.Games {
		if game.Name == gameName {
			return game, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameName)
}

// Backup backs up every save location of the named game. Disabled games
// are skipped silently. A failure in any save location aborts the game;
// files already copied are left in place.
func (s *Service) Backup(gameName string) error {
	game, err := s.findGame(gameName)
	if err != nil {
		return err
	}
	if !game.IsEnabled() {
		s.log.Warn("game is disabled, skipping backup", zap.String("game", gameName))
		return nil
	}

	gameBackupDir := filepath.Join(s.backupRoot, game.Name)
	err = os.MkdirAll(gameBackupDir, 0755)
	if err != nil {
		return fmt.Errorf("could not create backup directory %s: %w", gameBackupDir, err)
	}

	for i, save := range game.Saves {
		s.log.Info("processing save location",
			zap.String("game", game.Name),
			zap.Int("location", i+1),
			zap.Int("total", len(game.Saves)))
		err = s.backupSaveLocation(save, gameBackupDir)
		if err != nil {
			return err
		}
	}

	s.log.Info("backup complete", zap.String("game", game.Name))
	return nil
}

func (s *Service) backupSaveLocation(save *config.SaveLocation, gameBackupDir string) error {
	source, err := config.Expand(save.Path, s.vars)
	if err != nil {
		return err
	}
	s.log.Info("backing up", zap.String("from", source))

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
		return fmt.Errorf("could not stat %s: %w", source, err)
	}

	dest := filepath.Join(gameBackupDir, s.anon.anonymize(source))
	s.log.Debug("backup destination", zap.String("path", dest))

	err = os.MkdirAll(dest, 0755)
	if err != nil {
		return fmt.Errorf("could not create backup subdirectory %s: %w", dest, err)
	}

	if len(save.Files) == 0 {
		return s.copyTree(source, dest)
	}
	for _, pattern := range save.Files {
		err = s.copyPattern(source, dest, pattern)
		if err != nil {
			return err
		}
	}
	return nil
}

// BackupAll backs up every enabled game in document order. It does not
// stop on the first failure: every game is attempted, and an aggregate
// error is returned if any of them failed.
func (s *Service) BackupAll() error {
	return s.forEachEnabled("backup", s.Backup)
}

// RestoreAll restores every enabled game in document order, with the
// same continue-on-failure behavior as BackupAll.
func (s *Service) RestoreAll() error {
	return s.forEachEnabled("restore", s.Restore)
}

func (s *Service) forEachEnabled(operation string, run func(string) error) error {
	games := s.Games()
	if len(games) == 0 {
		s.log.Warn("no enabled games found in configuration")
		return nil
	}

	var (
		succeeded int
		failed    int
		errs      *multierror.Error
	)
	for _, game := range games {
		err := run(game.Name)
		if err != nil {
			s.log.Error(operation+" failed", zap.String("game", game.Name), zap.Error(err))
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", game.Name, err))
			failed++
			continue
		}
		succeeded++
	}

	s.log.Info(operation+" summary",
		zap.Int("successful", succeeded),
		zap.Int("failed", failed))

	if size, err := utils.DirSize(s.backupRoot); err == nil {
		s.log.Info("backup tree size", zap.String("size", units.BytesSize(float64(size))))
	}
	return errs.ErrorOrNil()
}
