// Tests for the catalog table accessor.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmint/binder/pkg/types"
)

func TestCardsTable(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend, table types.Table)
	}{
		{
			name: "create assigns identity and round-trips fields",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(1, "Fream")
				card.Talent = "Echo Strike"
				card.Illustrator = "T. Marn"

				id, err := table.Set(0, card)
				require.NoError(t, err)
				assert.Greater(t, id, int64(0))

				entity, err := table.Get(id)
				require.NoError(t, err)
				got := entity.(*types.Card)
				assert.Equal(t, "Fream", got.Name)
				assert.Equal(t, "CH-001A", got.Number)
				assert.Equal(t, types.CardTypeCharacter, got.CardType)
				assert.Equal(t, "Echo Strike", got.Talent)
				require.NotNil(t, got.PowerLevel)
				assert.Equal(t, int64(8), *got.PowerLevel)
				assert.False(t, got.CreatedAt.IsZero())
			},
		},
		{
			name: "unset power level survives the round trip as nil",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(2, "Briny")
				card.PowerLevel = nil
				id, err := table.Set(0, card)
				require.NoError(t, err)

				entity, err := table.Get(id)
				require.NoError(t, err)
				assert.Nil(t, entity.(*types.Card).PowerLevel)
			},
		},
		{
			name: "update overwrites fields and keeps identity",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(3, "Sparkit")
				id, err := table.Set(0, card)
				require.NoError(t, err)

				card.Name = "Sparkit EX"
				pl := int64(10)
				card.PowerLevel = &pl
				card.IsHolo = true
				updatedID, err := table.Set(id, card)
				require.NoError(t, err)
				assert.Equal(t, id, updatedID)

				entity, err := table.Get(id)
				require.NoError(t, err)
				got := entity.(*types.Card)
				assert.Equal(t, "Sparkit EX", got.Name)
				assert.True(t, got.IsHolo)
				assert.Equal(t, int64(10), *got.PowerLevel)
			},
		},
		{
			name: "duplicate number is rejected with the sentinel",
			check: func(t *testing.T, b *Backend, table types.Table) {
				_, err := table.Set(0, characterCard(4, "Glowl"))
				require.NoError(t, err)

				clash := characterCard(4, "Other Glowl")
				_, err = table.Set(0, clash)
				assert.ErrorIs(t, err, types.ErrDuplicateNumber)
			},
		},
		{
			name: "updating a card to its own number is allowed",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(5, "Murrow")
				id, err := table.Set(0, card)
				require.NoError(t, err)

				card.Edition = "second"
				_, err = table.Set(id, card)
				assert.NoError(t, err)
			},
		},
		{
			name: "invalid card type is rejected",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(6, "Nix")
				card.CardType = "TRAP"
				_, err := table.Set(0, card)
				assert.ErrorIs(t, err, types.ErrInvalidCardType)
			},
		},
		{
			name: "invalid element is rejected",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(7, "Nix")
				card.Element = "SHADOW"
				_, err := table.Set(0, card)
				assert.ErrorIs(t, err, types.ErrInvalidElement)
			},
		},
		{
			name: "empty name and number are rejected",
			check: func(t *testing.T, b *Backend, table types.Table) {
				card := characterCard(8, "")
				_, err := table.Set(0, card)
				assert.ErrorIs(t, err, types.ErrInvalidName)

				card = characterCard(8, "Named")
				card.Number = ""
				_, err = table.Set(0, card)
				assert.ErrorIs(t, err, types.ErrInvalidNumber)
			},
		},
		{
			name: "get of a missing id returns ErrNotFound",
			check: func(t *testing.T, b *Backend, table types.Table) {
				_, err := table.Get(9999)
				assert.ErrorIs(t, err, types.ErrNotFound)
				_, err = table.Get(0)
				assert.ErrorIs(t, err, types.ErrInvalidID)
			},
		},
		{
			name: "delete removes the card but not its collection records",
			check: func(t *testing.T, b *Backend, table types.Table) {
				id, err := table.Set(0, characterCard(9, "Fadeling"))
				require.NoError(t, err)
				statusID := seedStatus(t, b, ownedStatus(id))

				require.NoError(t, table.Delete(id))

				_, err = table.Get(id)
				assert.ErrorIs(t, err, types.ErrNotFound)

				// The orphaned record stays; reporting it is the
				// integrity validator's job.
				collection, err := b.GetTable(types.CollectionTable)
				require.NoError(t, err)
				entity, err := collection.Get(statusID)
				require.NoError(t, err)
				assert.Equal(t, id, entity.(*types.CollectionStatus).CardID)
			},
		},
		{
			name: "fetch filters by card_type and element",
			check: func(t *testing.T, b *Backend, table types.Table) {
				fire := characterCard(10, "Emberil")
				water := characterCard(11, "Briny")
				water.Element = types.ElementWater
				guardian := &types.Card{
					Number: "GD-001", Name: "Fire Guardian",
					CardType: types.CardTypeGuardian, Element: types.ElementFire,
				}
				for _, c := range []*types.Card{fire, water, guardian} {
					_, err := table.Set(0, c)
					require.NoError(t, err)
				}

				rows, err := table.Fetch(types.Filter{"card_type": types.CardTypeCharacter})
				require.NoError(t, err)
				assert.Len(t, rows, 2)

				rows, err = table.Fetch(types.Filter{
					"card_type": types.CardTypeCharacter,
					"element":   types.ElementWater,
				})
				require.NoError(t, err)
				require.Len(t, rows, 1)
				assert.Equal(t, "Briny", rows[0].(*types.Card).Name)
			},
		},
		{
			name: "fetch honors limit and offset in id order",
			check: func(t *testing.T, b *Backend, table types.Table) {
				names := []string{"Alpha", "Beta", "Gamma", "Delta"}
				for i, name := range names {
					_, err := table.Set(0, characterCard(20+i, name))
					require.NoError(t, err)
				}

				rows, err := table.Fetch(types.Filter{"limit": 2, "offset": 1})
				require.NoError(t, err)
				require.Len(t, rows, 2)
				assert.Equal(t, "Beta", rows[0].(*types.Card).Name)
				assert.Equal(t, "Gamma", rows[1].(*types.Card).Name)
			},
		},
		{
			name: "fetch rejects a malformed filter value",
			check: func(t *testing.T, b *Backend, table types.Table) {
				_, err := table.Fetch(types.Filter{"card_type": 42})
				assert.ErrorIs(t, err, types.ErrInvalidFilter)
			},
		},
		{
			name: "set rejects a non-card payload",
			check: func(t *testing.T, b *Backend, table types.Table) {
				_, err := table.Set(0, "not a card")
				assert.ErrorIs(t, err, types.ErrInvalidData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			table, err := b.GetTable(types.CardsTable)
			require.NoError(t, err)
			tt.check(t, b, table)
		})
	}
}
