package cli

import (
	"go.uber.org/zap"

	"github.com/runnerr0/familydays/internal/calendar"
	"github.com/runnerr0/familydays/internal/config"
	"github.com/runnerr0/familydays/internal/people"
	"github.com/runnerr0/familydays/internal/render"
)

// convert reads the input report, builds the month sections and writes the PDF.
func (o *Options) convert(cfg *config.Config, logger *zap.Logger) error {
	return o.convertWithRenderer(cfg, logger, render.NewPDFRenderer(cfg.Document))
}

// convertWithRenderer runs the pipeline against a provided renderer (used by tests).
func (o *Options) convertWithRenderer(cfg *config.Config, logger *zap.Logger, r render.Renderer) error {
	persons, err := people.ReadFile(o.Input)
	if err != nil {
		return err
	}
	logger.Info("read input", zap.String("path", o.Input), zap.Int("rows", len(persons)))

	ex, err := calendar.Extract(persons)
	if err != nil {
		return err
	}

	for _, p := range ex.SkippedBirthdays {
		logger.Debug("skipping unparseable birth date",
			zap.String("first_name", p.FirstName),
			zap.String("last_name", p.LastName),
			zap.String("birth_date", p.BirthDate))
	}

	buckets := calendar.GroupByMonth(ex.Events)
	logger.Info("grouped events",
		zap.Int("living", len(ex.Living)),
		zap.Int("birthdays", countKind(ex.Events, calendar.Birthday)),
		zap.Int("anniversaries", countKind(ex.Events, calendar.Anniversary)),
		zap.Int("months", len(buckets)))

	doc := render.Compose(cfg.Document.Title, buckets)
	if err := render.WriteFile(o.Output, doc, r); err != nil {
		return err
	}
	logger.Info("wrote document", zap.String("path", o.Output))

	return nil
}

func countKind(events []calendar.Event, k calendar.Kind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
