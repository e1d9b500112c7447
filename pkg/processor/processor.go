// Package processor drives one run over a batch of vocabulary entries:
// duplicate check, fetch, classification when needed, extraction, card
// mapping, card creation, and the run summary. Entries are processed strictly
// sequentially; one entry fully completes before the next begins.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/cards"
	"github.com/mhofer/wortkarten/pkg/classifier"
	"github.com/mhofer/wortkarten/pkg/db"
	"github.com/mhofer/wortkarten/pkg/extractors"
)

// SkipReasonExists is the recorded reason when a word is already present in
// the target collection.
const SkipReasonExists = "Word already exists in deck"

// WordFetcher retrieves the dictionary page for a word.
type WordFetcher interface {
	FetchWordHTML(ctx context.Context, word string) (string, error)
}

// CardCreator submits a card to the flashcard service.
type CardCreator interface {
	CreateCard(ctx context.Context, collectionID string, card cards.Card) (string, error)
}

// Mirror records created cards locally. Optional; mirror failures are logged,
// never fatal.
type Mirror interface {
	RecordCard(card db.MirrorCard) error
}

// Options configures a single run.
type Options struct {
	CollectionID string
	// ExistingNames holds the cleaned names already present in the target
	// collection, computed once before the run. The set is read-only during
	// the run: duplicate rows inside one input file are not caught.
	ExistingNames map[string]struct{}
}

// Processor processes vocabulary entries into flashcards.
type Processor struct {
	log     *slog.Logger
	fetcher WordFetcher
	cards   CardCreator
	mirror  Mirror
}

// New creates a Processor. mirror may be nil.
func New(log *slog.Logger, fetcher WordFetcher, cardCreator CardCreator, mirror Mirror) *Processor {
	return &Processor{
		log:     log,
		fetcher: fetcher,
		cards:   cardCreator,
		mirror:  mirror,
	}
}

// Run processes all entries and returns the run summary. Per-entry failures
// are recorded and the run continues; a dispatch or mapper failure on an
// unknown type aborts the whole run, because that is a programming defect.
func (p *Processor) Run(ctx context.Context, entries []models.VocabularyEntry, opts Options) (*models.ProcessingSummary, error) {
	start := time.Now()
	summary := &models.ProcessingSummary{
		RunID:     uuid.NewString(),
		TotalRows: len(entries),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			summary.ProcessingTimeMs = time.Since(start).Milliseconds()
			return summary, fmt.Errorf("run cancelled: %w", err)
		}

		result, err := p.processEntry(ctx, entry, opts, summary.RunID)
		if err != nil {
			// Invariant violation from dispatch or mapper. Propagate.
			summary.ProcessingTimeMs = time.Since(start).Milliseconds()
			return summary, err
		}

		switch {
		case result.Skipped:
			summary.SkippedCount++
		case result.Success:
			summary.SuccessCount++
		default:
			summary.FailureCount++
		}
		summary.Results = append(summary.Results, result)
	}

	summary.ProcessingTimeMs = time.Since(start).Milliseconds()
	p.log.Info("run completed",
		slog.String("run_id", summary.RunID),
		slog.Int("total", summary.TotalRows),
		slog.Int("success", summary.SuccessCount),
		slog.Int("skipped", summary.SkippedCount),
		slog.Int("failed", summary.FailureCount),
	)
	return summary, nil
}

func (p *Processor) processEntry(ctx context.Context, entry models.VocabularyEntry, opts Options, runID string) (models.ProcessingResult, error) {
	result := models.ProcessingResult{Entry: entry}

	if _, exists := opts.ExistingNames[CleanGermanWord(entry.Word)]; exists {
		p.log.Info("skipping duplicate", slog.String("word", entry.Word))
		result.Skipped = true
		result.Reason = SkipReasonExists
		return result, nil
	}

	html, err := p.fetcher.FetchWordHTML(ctx, entry.Word)
	if err != nil {
		p.log.Warn("fetch failed", slog.String("word", entry.Word), slog.String("error", err.Error()))
		result.Error = err.Error()
		return result, nil
	}

	vocType := entry.Type
	if vocType == models.TypeUnset {
		vocType = classifier.Classify(html)
		p.log.Debug("classified word", slog.String("word", entry.Word), slog.String("type", string(vocType)))
	}

	ext, err := extractors.ForType(vocType)
	if err != nil {
		return result, err
	}

	record, err := ext.Parse(html)
	if err != nil {
		p.log.Warn("extraction failed", slog.String("word", entry.Word), slog.String("error", err.Error()))
		result.Error = fmt.Sprintf("extract %q: %v", entry.Word, err)
		return result, nil
	}
	result.Data = record

	card, err := cards.BuildCard(record)
	if err != nil {
		return result, err
	}

	cardID, err := p.cards.CreateCard(ctx, opts.CollectionID, card)
	if err != nil {
		p.log.Warn("card creation failed", slog.String("word", entry.Word), slog.String("error", err.Error()))
		result.Error = err.Error()
		return result, nil
	}

	if p.mirror != nil {
		mirrorErr := p.mirror.RecordCard(db.MirrorCard{
			RemoteID:     cardID,
			CollectionID: opts.CollectionID,
			Name:         record.Headword(),
			CleanName:    CleanGermanWord(record.Headword()),
			WordType:     string(record.Type()),
			RunID:        runID,
		})
		if mirrorErr != nil {
			p.log.Warn("mirror write failed", slog.String("word", entry.Word), slog.String("error", mirrorErr.Error()))
		}
	}

	result.Success = true
	result.CardID = cardID
	return result, nil
}

// CleanGermanWord strips a word to the permitted German alphabet: letters,
// umlauts, ß, spaces and hyphens. Everything else is discarded. Card names on
// both sides of the duplicate comparison go through this.
func CleanGermanWord(word string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		case r == 'ä', r == 'ö', r == 'ü', r == 'Ä', r == 'Ö', r == 'Ü', r == 'ß':
			return r
		case r == ' ', r == '-':
			return r
		default:
			return -1
		}
	}, word)
}

// BuildExistingSet converts a pre-cleaned name list to the lookup set Run
// expects.
func BuildExistingSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[CleanGermanWord(name)] = struct{}{}
	}
	return set
}
