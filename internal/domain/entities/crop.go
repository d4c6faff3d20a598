package entities

import (
	"time"
)

// CropCategory is one of the broad agricultural categories a crop falls into.
type CropCategory string

const (
	CategoryCereals    CropCategory = "cereals"
	CategoryPulses     CropCategory = "pulses"
	CategoryOilseeds   CropCategory = "oilseeds"
	CategoryVegetables CropCategory = "vegetables"
	CategoryFruits     CropCategory = "fruits"
	CategorySpices     CropCategory = "spices"
	CategoryFibers     CropCategory = "fibers"
	CategorySugarcane  CropCategory = "sugarcane"
	CategoryPlantation CropCategory = "plantation"
)

// CropSeason is an Indian growing season.
type CropSeason string

const (
	SeasonKharif    CropSeason = "kharif"    // monsoon, June-October
	SeasonRabi      CropSeason = "rabi"      // winter, October-March
	SeasonZaid      CropSeason = "zaid"      // summer, March-June
	SeasonPerennial CropSeason = "perennial" // year-round
)

// Region is a broad Indian agro-geographic region.
type Region string

const (
	RegionNorth     Region = "north"
	RegionSouth     Region = "south"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionCentral   Region = "central"
	RegionNorthEast Region = "northeast"
)

// WaterRequirement is a 4-level ordinal describing irrigation demand.
type WaterRequirement string

const (
	WaterLow      WaterRequirement = "low"
	WaterModerate WaterRequirement = "moderate"
	WaterHigh     WaterRequirement = "high"
	WaterVeryHigh WaterRequirement = "very_high"
)

// SoilType is one of the major Indian soil classifications.
type SoilType string

const (
	SoilSandy    SoilType = "sandy"
	SoilClayey   SoilType = "clayey"
	SoilLoamy    SoilType = "loamy"
	SoilAlluvial SoilType = "alluvial"
	SoilBlack    SoilType = "black"
	SoilRed      SoilType = "red"
	SoilLaterite SoilType = "laterite"
)

// Crop is immutable reference data describing a cultivated crop. The
// diagnosis engine only ever reads crops; they are created at catalog
// load/sync time.
type Crop struct {
	ID               string           `json:"id" db:"id"`
	Name             string           `json:"name" db:"name"`
	NameHindi        string           `json:"name_hindi" db:"name_hindi"`
	ScientificName   string           `json:"scientific_name" db:"scientific_name"`
	Category         CropCategory     `json:"category" db:"category"`
	Seasons          []CropSeason     `json:"seasons" db:"seasons"`
	Regions          []Region         `json:"regions" db:"regions"`
	ImageURL         string           `json:"image_url,omitempty" db:"image_url"`
	Description      string           `json:"description" db:"description"`
	DescriptionHindi string           `json:"description_hindi" db:"description_hindi"`
	CommonDiseases   []string         `json:"common_diseases" db:"common_diseases"` // disease IDs
	CommonPests      []string         `json:"common_pests" db:"common_pests"`       // pest/disease IDs
	WaterRequirement WaterRequirement `json:"water_requirement" db:"water_requirement"`
	SoilTypes        []SoilType       `json:"soil_types" db:"soil_types"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}
