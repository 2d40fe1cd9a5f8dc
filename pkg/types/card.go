package types

import "time"

// Card types. The set is closed; storage rejects anything else.
const (
	CardTypeCharacter = "CHARACTER"
	CardTypeSupport   = "SUPPORT"
	CardTypeGuardian  = "GUARDIAN"
	CardTypeShield    = "SHIELD"
	CardTypePromo     = "PROMO"
)

// validCardTypes is the set of recognized card type values.
var validCardTypes = map[string]bool{
	CardTypeCharacter: true,
	CardTypeSupport:   true,
	CardTypeGuardian:  true,
	CardTypeShield:    true,
	CardTypePromo:     true,
}

// CardTypes lists all card types in canonical order.
var CardTypes = []string{
	CardTypeCharacter,
	CardTypeSupport,
	CardTypeGuardian,
	CardTypeShield,
	CardTypePromo,
}

// Element tags. An empty string means the element is absent.
const (
	ElementFire     = "FIRE"
	ElementWater    = "WATER"
	ElementGrass    = "GRASS"
	ElementElectric = "ELECTRIC"
	ElementPlatinum = "PLATINUM"
)

// validElements is the set of recognized element values.
var validElements = map[string]bool{
	ElementFire:     true,
	ElementWater:    true,
	ElementGrass:    true,
	ElementElectric: true,
	ElementPlatinum: true,
}

// Elements lists the full element universe in canonical order. The
// integrity validator checks guardian/shield cardinality against every
// element in this list, including elements no card currently carries.
var Elements = []string{
	ElementFire,
	ElementWater,
	ElementGrass,
	ElementElectric,
	ElementPlatinum,
}

// Character power level bounds. Values outside this range are
// representable but flagged by the integrity validator.
const (
	MinPowerLevel = 8
	MaxPowerLevel = 10
)

// HoloLevel is the card level that must always be the holo variant.
const HoloLevel = 10

// Card is one catalog entry. Multiple cards may share a name (variants);
// the number is unique per catalog. ID zero means the card has not been
// assigned an identity and is not a valid validation input.
type Card struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	CardType string `json:"card_type"`

	// Element fields. Empty string means absent. Strength and Weakness
	// are meaningful for character cards only.
	Element  string `json:"element,omitempty"`
	Strength string `json:"strength,omitempty"`
	Weakness string `json:"weakness,omitempty"`

	// PowerLevel is nil when unset. Required for character cards.
	PowerLevel *int64 `json:"power_level,omitempty"`

	// Level is the printed card level. Level-10 cards must be holo.
	Level int64 `json:"level,omitempty"`

	IsHolo      bool `json:"is_holo"`
	IsMascot    bool `json:"is_mascot"`
	IsBoxTopper bool `json:"is_box_topper"`

	Talent      string `json:"talent,omitempty"`
	Edition     string `json:"edition,omitempty"`
	Illustrator string `json:"illustrator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidCardType reports whether the given string is a recognized card type.
func IsValidCardType(ct string) bool {
	return validCardTypes[ct]
}

// IsValidElement reports whether the given string is a recognized element.
// The empty string is not a valid element; absence is modeled separately.
func IsValidElement(e string) bool {
	return validElements[e]
}

// RequiresElement reports whether the card's type requires a main element.
// Support and promo cards may omit it.
func (c Card) RequiresElement() bool {
	switch c.CardType {
	case CardTypeCharacter, CardTypeGuardian, CardTypeShield:
		return true
	default:
		return false
	}
}

// RequiresMatchups reports whether the card's type requires elemental
// strength and weakness fields. Only character cards carry matchups.
func (c Card) RequiresMatchups() bool {
	return c.CardType == CardTypeCharacter
}

// IsPlayable reports whether the card can be used in gameplay.
// Box toppers are display variants and are not playable.
func (c Card) IsPlayable() bool {
	return !c.IsBoxTopper
}
