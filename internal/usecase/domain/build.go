package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Koushal55/GitReceipt/internal/entities"

	"golang.org/x/sync/errgroup"
)

// BuildReceipt fetches the identity's public activity and derives the full
// receipt document. The three source fetches run concurrently and must all
// succeed; there is no partial aggregation.
func (u *Usecase) BuildReceipt(ctx context.Context, login string) (entities.ReceiptDocument, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(login) == "" {
		return entities.ReceiptDocument{}, fmt.Errorf("%w: login is required", entities.ErrInvalidArgument)
	}

	var (
		identity *entities.Identity
		events   []entities.ActivityEvent
		repos    []entities.RepositorySummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		identity, err = u.source.GetProfile(gctx, login)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = u.source.GetRecentEvents(gctx, login, u.eventsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = u.source.GetRepositories(gctx, login, u.reposLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.ReceiptDocument{}, err
	}

	// The API is asked for capped windows already; truncate again so a
	// misbehaving source cannot skew the aggregates.
	if len(events) > u.eventsLimit {
		events = events[:u.eventsLimit]
	}
	if len(repos) > u.reposLimit {
		repos = repos[:u.reposLimit]
	}

	stats := AggregateStats(events)
	shares := RankLanguages(repos)
	topLang := TopLanguage(shares)

	style := ClassifyStyle(stats, topLang)
	effort := EffortScore(stats)
	items := PriceItems(identity.Login, stats)
	surcharge := SelectSurcharge(stats, topLang, u.rng)

	if u.enrichment != nil {
		if label, err := u.generateLabel(ctx, identity.Login, stats, topLang); err != nil {
			u.log.Warnw("enrichment failed, keeping heuristic surcharge", "login", login, "error", err)
		} else {
			surcharge = OverrideSurcharge(label)
		}
	}

	return AssembleReceipt(*identity, stats, shares, items, surcharge, style, effort, u.rng, time.Now()), nil
}

// generateLabel isolates the enrichment call behind its own timeout and a
// recover, so a failing or panicking provider can never abort the request.
func (u *Usecase) generateLabel(ctx context.Context, login string, stats entities.DerivedStatistics, topLanguage string) (label string, err error) {
	defer func() {
		if r := recover(); r != nil {
			label = ""
			err = fmt.Errorf("enrichment panic: %v", r)
		}
	}()

	ctx, cancel := withTimeout(ctx, u.enrichTimeout)
	defer cancel()

	label, err = u.enrichment.GenerateSurchargeLabel(ctx, login, stats, topLanguage)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(label) == "" {
		return "", errors.New("empty enrichment label")
	}
	return label, nil
}
