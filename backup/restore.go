package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cartridge/config"
)

// Restore copies a game's backup back to its configured save locations.
// Disabled games are skipped silently. Restore always runs in recursive
// mode: the backup tree already contains exactly the files that were
// copied, so the `files` patterns are not re-evaluated. Newer files at
// the destination are overwritten.
func (s *Service) Restore(gameName string) error {
	game, err := s.findGame(gameName)
	if err != nil {
		return err
	}
	if !game.IsEnabled() {
		s.log.Warn("game is disabled, skipping restore", zap.String("game", gameName))
		return nil
	}

	gameBackupDir := filepath.Join(s.backupRoot, game.Name)
	if _, err := os.Stat(gameBackupDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNoBackup, gameName)
		}
		return fmt.Errorf("could not stat %s: %w", gameBackupDir, err)
	}

	for i, save := range game.Saves {
		s.log.Info("processing restore location",
			zap.String("game", game.Name),
			zap.Int("location", i+1),
			zap.Int("total", len(game.Saves)))
		err = s.restoreSaveLocation(save, gameBackupDir)
		if err != nil {
			return err
		}
	}

	s.log.Info("restore complete", zap.String("game", game.Name))
	return nil
}

func (s *Service) restoreSaveLocation(save *config.SaveLocation, gameBackupDir string) error {
	dest, err := config.Expand(save.Path, s.vars)
	if err != nil {
		return err
	}
	s.log.Info("restoring to", zap.String("path", dest))

	source := filepath.Join(gameBackupDir, s.anon.anonymize(dest))
	s.log.Debug("restore source", zap.String("path", source))

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup directory does not exist: %s", source)
		}
		return fmt.Errorf("could not stat %s: %w", source, err)
	}

	err = os.MkdirAll(dest, 0755)
	if err != nil {
		return fmt.Errorf("could not create destination directory %s: %w", dest, err)
	}
	return s.copyTree(source, dest)
}
