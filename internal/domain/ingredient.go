package domain

// IngredientType identifies a brewing ingredient
type IngredientType string

// Ingredient types
const (
	IngredientMandrakeRoot  IngredientType = "MandrakeRoot"
	IngredientGraveDust     IngredientType = "GraveDust"
	IngredientBatWing       IngredientType = "BatWing"
	IngredientGhostMushroom IngredientType = "GhostMushroom"
	IngredientWyrmScale     IngredientType = "WyrmScale"
	IngredientVampireBloom  IngredientType = "VampireBloom"
	IngredientPumpkinSeed   IngredientType = "PumpkinSeed"
)

// Zone is a foraging area of the world map
type Zone string

// Zones
const (
	ZoneForest        Zone = "Forest"
	ZoneSwamp         Zone = "Swamp"
	ZoneGraveyard     Zone = "Graveyard"
	ZoneCursedVillage Zone = "CursedVillage"
	ZoneRuins         Zone = "Ruins"
	ZoneMountainPass  Zone = "MountainPass"
)

// AllZones lists every zone in map order
var AllZones = []Zone{
	ZoneForest,
	ZoneSwamp,
	ZoneGraveyard,
	ZoneCursedVillage,
	ZoneRuins,
	ZoneMountainPass,
}

// AllIngredientTypes lists every ingredient type
var AllIngredientTypes = []IngredientType{
	IngredientMandrakeRoot,
	IngredientGraveDust,
	IngredientBatWing,
	IngredientGhostMushroom,
	IngredientWyrmScale,
	IngredientVampireBloom,
	IngredientPumpkinSeed,
}

// IngredientZones maps each ingredient to the zone it spawns in
var IngredientZones = map[IngredientType]Zone{
	IngredientMandrakeRoot:  ZoneForest,
	IngredientGhostMushroom: ZoneSwamp,
	IngredientGraveDust:     ZoneGraveyard,
	IngredientPumpkinSeed:   ZoneCursedVillage,
	IngredientBatWing:       ZoneCursedVillage,
	IngredientVampireBloom:  ZoneRuins,
	IngredientWyrmScale:     ZoneMountainPass,
}

// IngredientDisplayNames holds the human readable ingredient names
var IngredientDisplayNames = map[IngredientType]string{
	IngredientMandrakeRoot:  "Mandrake Root",
	IngredientGraveDust:     "Grave Dust",
	IngredientBatWing:       "Bat Wing",
	IngredientGhostMushroom: "Ghost Mushroom",
	IngredientWyrmScale:     "Wyrm Scale",
	IngredientVampireBloom:  "Vampire Bloom",
	IngredientPumpkinSeed:   "Pumpkin Seed",
}

// DisplayName returns the human readable name, falling back to the raw type
func (t IngredientType) DisplayName() string {
	if name, ok := IngredientDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// IngredientItem is one inventory slot of a player's ingredient bag.
// Quantity is never negative; empty slots are removed and the remaining slots
// re-indexed contiguously from 0.
type IngredientItem struct {
	Owner          string         `json:"owner"`
	Slot           int            `json:"slot"`
	IngredientType IngredientType `json:"ingredient_type"`
	Quantity       int            `json:"quantity"`
}
