package docmodel

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/docmodel/pkg/document"
	"github.com/dmitrymomot/docmodel/pkg/logger"
	"github.com/dmitrymomot/docmodel/pkg/messages"
	"github.com/dmitrymomot/docmodel/pkg/types"
	"github.com/dmitrymomot/docmodel/pkg/validation"
	"github.com/dmitrymomot/docmodel/pkg/validator"
)

// Runtime holds the registries, logger and message catalog shared by the
// models of a process. Its registries are private to it, so custom types
// and validators registered on one runtime do not leak into another.
type Runtime struct {
	Logger     *slog.Logger
	Messages   *messages.Catalog
	Types      *types.Registry
	Validators *validator.Registry
	Locale     string
}

// NewRuntime builds a runtime from cfg. Logger options are applied after the
// ones derived from cfg.
func NewRuntime(ctx context.Context, cfg Config, opts ...logger.Option) (*Runtime, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log := logger.New(append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("docmodel")),
	}, opts...)...)

	catalog, err := messages.New(ctx, messages.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if cfg.MessagesPath != "" {
		if err := loadMessages(ctx, catalog, cfg.MessagesPath); err != nil {
			log.ErrorContext(ctx, "failed to load messages", logger.Error(err))
			return nil, err
		}
	}

	locale := cfg.Locale
	if locale == "" {
		locale = messages.DefaultLanguage
	}
	return &Runtime{
		Logger:     log,
		Messages:   catalog,
		Types:      types.NewRegistry(),
		Validators: validator.NewRegistry(),
		Locale:     locale,
	}, nil
}

func loadMessages(ctx context.Context, catalog *messages.Catalog, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("messages path: %w", err)
	}
	if info.IsDir() {
		return catalog.LoadDir(ctx, path)
	}
	return catalog.Load(ctx, path)
}

// NewModel creates a model bound to the runtime's logger and registries.
func (r *Runtime) NewModel(name string, opts ...document.Option) *document.Model {
	return document.NewModel(name, append([]document.Option{
		document.WithLogger(r.Logger),
		document.WithTypes(r.Types),
		document.WithValidators(r.Validators),
	}, opts...)...)
}

// Localize renders a report in the runtime's locale.
func (r *Runtime) Localize(report *validation.Report) map[string][]string {
	return report.Localize(r.Messages, r.Locale)
}
