package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/user/songdb/catalog"
	"github.com/user/songdb/config"
	"github.com/user/songdb/editor"
	"github.com/user/songdb/flatfile"
	"github.com/user/songdb/logging"
)

// commandContext carries flag values and lazily built shared state for every
// subcommand.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     config.Config
	configErr  error

	logOnce   sync.Once
	logger    *slog.Logger
	logCloser io.Closer
	logErr    error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.LogLevel = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger opens the session log described by the config.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		c.logger, c.logCloser, c.logErr = logging.New(logging.Options{
			Level: cfg.LogLevel,
			Path:  cfg.LogPath,
		})
	})
	return c.logger, c.logErr
}

// close releases the session log. It is safe to call more than once.
func (c *commandContext) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
		c.logCloser = nil
	}
}

// loadCatalog reads the database at path into a catalog. Overwritten
// duplicate codes are logged, not fatal.
func (c *commandContext) loadCatalog(path string) (*catalog.Catalog, flatfile.File, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, flatfile.File{}, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, flatfile.File{}, err
	}

	file := flatfile.File{
		Path:    path,
		Options: flatfile.Options{StopAtBlankLine: cfg.StopAtBlankLine},
	}
	songs, err := file.Load()
	if err != nil {
		return nil, file, err
	}

	cat := catalog.New()
	for _, code := range cat.Load(songs) {
		logger.Warn("duplicate item code in database; last record wins", "item_code", code, "path", path)
	}
	logger.Info("database loaded", "path", path, "songs", cat.Len())
	return cat, file, nil
}

// openSession loads path and starts an editor session saving back to it.
func (c *commandContext) openSession(path string) (*editor.Session, error) {
	cat, file, err := c.loadCatalog(path)
	if err != nil {
		return nil, describeLoadError(err)
	}
	logger, _ := c.ensureLogger()
	return editor.NewSession(cat, file, logger), nil
}

func describeLoadError(err error) error {
	var malformed *flatfile.MalformedRecordError
	switch {
	case errors.Is(err, flatfile.ErrNotFound):
		return err
	case errors.As(err, &malformed):
		return fmt.Errorf("database is damaged: %w", err)
	default:
		return fmt.Errorf("load database: %w", err)
	}
}
