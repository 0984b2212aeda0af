// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
	mockclock "github.com/KirkDiggler/grimoire-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	datasetmock "github.com/KirkDiggler/grimoire-api/internal/repositories/dataset/mock"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
	normalizermock "github.com/KirkDiggler/grimoire-api/internal/services/normalizer/mock"
)

// ExpectDatasetLoad sets up one successful dataset load returning input from source
func ExpectDatasetLoad(ctx any, repo *datasetmock.MockRepository, input *grimoire.RawInput, source string) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, dataset.LoadInput{}).
		Return(&dataset.LoadOutput{
			Input:  input,
			Source: source,
		}, nil)
}

// ExpectDatasetLoadError sets up one failing dataset load
func ExpectDatasetLoadError(ctx context.Context, repo *datasetmock.MockRepository, err error) *gomock.Call {
	return repo.EXPECT().
		Load(ctx, dataset.LoadInput{}).
		Return(nil, err)
}

// ExpectReload sets up the load and the timestamp a successful reload consumes
func ExpectReload(
	ctx context.Context,
	repo *datasetmock.MockRepository,
	clk *mockclock.MockClock,
	input *grimoire.RawInput,
	now time.Time,
) {
	ExpectDatasetLoad(ctx, repo, input, "test")
	clk.EXPECT().Now().Return(now)
}

// ExpectNormalizeAll makes the normalizer turn input into spells, keyed by
// their folded names
func ExpectNormalizeAll(n *normalizermock.MockNormalizer, input *grimoire.RawInput, spells ...*grimoire.Spell) *gomock.Call {
	byName := make(map[string]*grimoire.Spell, len(spells))
	for _, spell := range spells {
		byName[normalizer.Fold(spell.Name)] = spell
	}
	return n.EXPECT().
		NormalizeAll(input).
		Return(&normalizer.Result{Spells: spells, ByName: byName})
}
