package calc

import "time"

// ServiceConfig holds the calc service configuration
type ServiceConfig struct {
	// Seed for the random source used by darkmoon draws. Zero means
	// seed from the current time.
	Seed int64
}

// UnitAmount is one row of a time breakdown, in display order
type UnitAmount struct {
	Unit   string  `json:"unit"`
	Amount float64 `json:"amount"`
}

// ConvertTimeInput spells out a duration as a value and unit
type ConvertTimeInput struct {
	Value float64
	Unit  string
}

// ConvertTimeOutput holds the duration expressed in every supported unit
type ConvertTimeOutput struct {
	Breakdown []UnitAmount `json:"breakdown"`
}

// ElapsedTimeInput holds two instants to diff
type ElapsedTimeInput struct {
	Start time.Time
	End   time.Time
}

// ElapsedTimeOutput holds the absolute delta expressed in every supported unit
type ElapsedTimeOutput struct {
	Breakdown []UnitAmount `json:"breakdown"`
}

// ScaleResolutionInput holds a base resolution and the scale factors to apply
type ScaleResolutionInput struct {
	Width  int
	Height int
	Scales []float64
}

// ScaledResolution is one scaled width/height pair
type ScaledResolution struct {
	Scale  float64 `json:"scale"`
	Width  int     `json:"w"`
	Height int     `json:"h"`
}

// ScaleResolutionOutput holds the scaled resolutions in input order
type ScaleResolutionOutput struct {
	Results []ScaledResolution `json:"results"`
}

// DriveSpec is one drive offer: capacity in TB and its price
type DriveSpec struct {
	TB    float64 `json:"tb"`
	Price float64 `json:"price"`
}

// DrivePrice is a drive offer with its computed price per TB
type DrivePrice struct {
	TB         float64 `json:"tb"`
	Price      float64 `json:"price"`
	PricePerTB float64 `json:"price_per_tb"`
}

// CompareDrivesInput holds the drive offers to compare
type CompareDrivesInput struct {
	Drives []DriveSpec
}

// CompareDrivesOutput holds every offer's price per TB and the cheapest one
type CompareDrivesOutput struct {
	Results  []DrivePrice `json:"results"`
	Cheapest DrivePrice   `json:"cheapest"`
}

// UsableSpaceInput describes a drive's advertised capacity and losses
type UsableSpaceInput struct {
	CapacityValue   float64
	CapacityUnit    string
	OverheadPercent float64
	ReservedGB      float64
}

// UsableSpaceOutput breaks usable capacity down in decimal and binary units
type UsableSpaceOutput struct {
	TotalBytes        float64 `json:"total_bytes"`
	FormattedBytes    float64 `json:"formatted_bytes"`
	ReservedBytes     float64 `json:"reserved_bytes"`
	UsableBytes       float64 `json:"usable_bytes"`
	UsableDecimalGB   float64 `json:"usable_decimal_gb"`
	UsableDecimalTB   float64 `json:"usable_decimal_tb"`
	UsableBinaryGiB   float64 `json:"usable_binary_gib"`
	UsableBinaryTiB   float64 `json:"usable_binary_tib"`
	BinaryCapacityGiB float64 `json:"binary_capacity_gib"`
	BinaryCapacityTiB float64 `json:"binary_capacity_tib"`
}

// DarkmoonLuckInput describes a darkmoon reading request
type DarkmoonLuckInput struct {
	Cards      int
	Deck       string
	Difficulty string
}

// DarkmoonLuckOutput holds the reading's score, chance, and flavor
type DarkmoonLuckOutput struct {
	Score      int      `json:"score"`
	Chance     int      `json:"chance"`
	Cards      []string `json:"cards"`
	Deck       string   `json:"deck"`
	Difficulty string   `json:"difficulty"`
	Comment    string   `json:"comment"`
}
