package types

import "time"

// Acquisition methods. An empty string means the method was not recorded,
// which the integrity validator reports as an incomplete record.
const (
	AcquisitionPulled = "PULLED"
	AcquisitionTraded = "TRADED"
	AcquisitionGifted = "GIFTED"
)

// validAcquisitions is the set of recognized acquisition methods.
var validAcquisitions = map[string]bool{
	AcquisitionPulled: true,
	AcquisitionTraded: true,
	AcquisitionGifted: true,
}

// Physical card conditions.
const (
	ConditionMint     = "MINT"
	ConditionNearMint = "NEAR_MINT"
	ConditionPlayed   = "PLAYED"
	ConditionDamaged  = "DAMAGED"
)

// validConditions is the set of recognized condition values.
var validConditions = map[string]bool{
	ConditionMint:     true,
	ConditionNearMint: true,
	ConditionPlayed:   true,
	ConditionDamaged:  true,
}

// CollectionStatus records one owned physical copy of a card. A card may
// have any number of collection records, one per copy. The record does not
// own the card; a dangling CardID is a reportable integrity issue rather
// than a hard error.
type CollectionStatus struct {
	ID     int64 `json:"id"`
	CardID int64 `json:"card_id"`

	// AcquisitionDate is nil when not recorded. Both acquisition fields
	// are required once the record exists.
	AcquisitionDate   *time.Time `json:"acquisition_date,omitempty"`
	AcquisitionMethod string     `json:"acquisition_method,omitempty"`

	Condition string `json:"condition,omitempty"`

	// Variant flags describing the physical copy, which may differ from
	// the catalog card (a misprint, an unexpected holo pull).
	IsHolo     bool `json:"is_holo"`
	IsPromo    bool `json:"is_promo"`
	IsMisprint bool `json:"is_misprint"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValidAcquisition reports whether the given string is a recognized
// acquisition method. The empty string is not valid; absence is modeled
// separately.
func IsValidAcquisition(a string) bool {
	return validAcquisitions[a]
}

// IsValidCondition reports whether the given string is a recognized
// physical condition.
func IsValidCondition(c string) bool {
	return validConditions[c]
}
