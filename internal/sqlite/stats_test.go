// Tests for collection analysis queries.
package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmint/binder/pkg/types"
)

func TestStats(t *testing.T) {
	b := setupBackend(t)

	firstID := seedCard(t, b, characterCard(1, "Fream"))
	seedCard(t, b, characterCard(2, "Briny"))
	guardianID := seedCard(t, b, &types.Card{
		Number: "GD-001", Name: "Fire Guardian",
		CardType: types.CardTypeGuardian, Element: types.ElementFire,
	})

	// First card twice (one holo copy), guardian once.
	seedStatus(t, b, ownedStatus(firstID))
	holo := ownedStatus(firstID)
	holo.IsHolo = true
	seedStatus(t, b, holo)
	seedStatus(t, b, ownedStatus(guardianID))

	stats, err := b.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, 2, stats.TotalCollected)
	assert.InDelta(t, 66.66, stats.CompletionPercentage, 0.01)
	assert.Equal(t, 1, stats.CollectedByType[types.CardTypeCharacter])
	assert.Equal(t, 1, stats.CollectedByType[types.CardTypeGuardian])
	assert.Equal(t, 1, stats.TotalHolos)
}

func TestStatsEmptyStore(t *testing.T) {
	b := setupBackend(t)

	stats, err := b.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCards)
	assert.Equal(t, 0, stats.TotalCollected)
	assert.Equal(t, 0.0, stats.CompletionPercentage)
	assert.Empty(t, stats.CollectedByType)
}

func TestMissingCards(t *testing.T) {
	b := setupBackend(t)

	ownedID := seedCard(t, b, characterCard(1, "Fream"))
	missingID := seedCard(t, b, characterCard(2, "Briny"))
	seedStatus(t, b, ownedStatus(ownedID))

	missing, err := b.MissingCards()
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, missingID, missing[0].ID)
	assert.Equal(t, "Briny", missing[0].Name)
}

func TestRecentAcquisitions(t *testing.T) {
	b := setupBackend(t)

	cardID := seedCard(t, b, characterCard(1, "Fream"))

	dates := []time.Time{
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	}
	for i := range dates {
		s := ownedStatus(cardID)
		s.AcquisitionDate = &dates[i]
		seedStatus(t, b, s)
	}
	// A record with no date never appears in the listing.
	undated := ownedStatus(cardID)
	undated.AcquisitionDate = nil
	seedStatus(t, b, undated)

	recent, err := b.RecentAcquisitions(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, time.March, recent[0].Status.AcquisitionDate.Month())
	assert.Equal(t, time.February, recent[1].Status.AcquisitionDate.Month())

	all, err := b.RecentAcquisitions(0) // default limit
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCompleteSets(t *testing.T) {
	b := setupBackend(t)

	// Fream: two variants, both owned. Briny: two variants, one owned.
	freamA := seedCard(t, b, characterCard(1, "Fream"))
	freamB := seedCard(t, b, characterCard(2, "Fream"))
	brinyA := seedCard(t, b, characterCard(3, "Briny"))
	seedCard(t, b, characterCard(4, "Briny"))
	// Guardians never count as sets.
	guardianID := seedCard(t, b, &types.Card{
		Number: "GD-001", Name: "Fire Guardian",
		CardType: types.CardTypeGuardian, Element: types.ElementFire,
	})

	for _, id := range []int64{freamA, freamB, brinyA, guardianID} {
		seedStatus(t, b, ownedStatus(id))
	}

	sets, err := b.CompleteSets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Fream"}, sets)
}

func TestDuplicateEntries(t *testing.T) {
	b := setupBackend(t)

	// Nine variants of one character exceeds the complete-set ceiling.
	for i := 0; i < 9; i++ {
		seedCard(t, b, characterCard(i+1, "Overprinted"))
	}
	// Two variants disagreeing on element.
	fire := characterCard(20, "Confused")
	water := characterCard(21, "Confused")
	water.Element = types.ElementWater
	seedCard(t, b, fire)
	seedCard(t, b, water)

	report, err := b.DuplicateEntries()
	require.NoError(t, err)

	require.Len(t, report.DuplicateNames, 1)
	assert.Equal(t, "Overprinted", report.DuplicateNames[0].Name)
	assert.Equal(t, 9, report.DuplicateNames[0].Count)
	assert.Len(t, report.DuplicateNames[0].Cards, 9)

	require.Len(t, report.MismatchedElements, 1)
	assert.Equal(t, "Confused", report.MismatchedElements[0].Name)
	assert.ElementsMatch(t, []string{types.ElementFire, types.ElementWater},
		report.MismatchedElements[0].Elements)
}

func TestDuplicateEntriesCleanStore(t *testing.T) {
	b := setupBackend(t)
	seedCard(t, b, characterCard(1, "Fream"))

	report, err := b.DuplicateEntries()
	require.NoError(t, err)
	assert.Empty(t, report.DuplicateNames)
	assert.Empty(t, report.MismatchedElements)
}

func TestValidateCardNumber(t *testing.T) {
	b := setupBackend(t)
	seedCard(t, b, characterCard(1, "Fream")) // takes CH-001A

	tests := []struct {
		name   string
		number string
		ok     bool
		reason string
	}{
		{"character format", "CH-002A", true, ""},
		{"support format", "SP-010B", true, ""},
		{"guardian format", "GD-003", true, ""},
		{"shield format", "SH-001", true, ""},
		{"promo format", "PR-0001", true, ""},
		{"box topper format", "BT-001", true, ""},
		{"bare numeric legacy", "106", true, ""},
		{"empty", "", false, "Card number cannot be empty"},
		{"garbage", "XX_12", false, "Invalid card number format"},
		{"character without variant letter", "CH-002", false, "Invalid card number format"},
		{"taken", "CH-001A", false, "Card number already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := b.ValidateCardNumber(tt.number)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
