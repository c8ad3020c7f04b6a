package calc

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"
)

var secondsPer = map[string]float64{
	"second": 1,
	"minute": 60,
	"hour":   3600,
	"day":    86400,
	"month":  30 * 86400,
	"year":   365 * 86400,
	"decade": 10 * 365 * 86400,
}

var timeOrder = []string{"decade", "year", "month", "day", "hour", "minute", "second"}

var elapsedOrder = []string{"year", "month", "day", "hour", "minute", "second"}

var decimalUnits = map[string]float64{
	"GB": 1e9,
	"TB": 1e12,
}

type cardDraw struct {
	Name  string
	Value float64
}

// cardDeck is the draw pool in fixed order so seeded draws replay
var cardDeck = []cardDraw{
	{"Ace", 10},
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7},
	{"8", 8}, {"9", 9}, {"10", 10},
	{"Jack", -5},
	{"Queen", -8},
	{"King", -10},
}

var difficultyRequired = map[string]float64{
	"trivial":   20,
	"normal":    40,
	"epic":      70,
	"legendary": 100,
}

const (
	critSuccessThreshold = 95
	critFailureThreshold = 5
)

var tierFlavor = map[string][]string{
	"hostile": {
		"The cards turn against you. Fate is not merely unkind, it is hostile.",
		"Dark energies coil around the spread. The Faire offers no mercy.",
		"The deck recoils. Whatever you attempt, expect resistance.",
		"You were not simply unlucky. You were actively opposed.",
	},
	"poor": {
		"The cards waver uneasily. Fortune does not favor you today.",
		"The spread is weak, uncertain, and unreliable.",
		"Luck is thin here. Proceed, but expect setbacks.",
		"The Darkmoon cards whisper doubt and hesitation.",
	},
	"favorable": {
		"The cards align, though imperfectly. Fortune leans your way.",
		"A modest but usable fate reveals itself.",
		"The spread shows promise, if not certainty.",
		"Luck is present, but it demands effort.",
	},
	"strong": {
		"The cards glow faintly. Fortune is firmly on your side.",
		"A strong alignment forms across the spread.",
		"The cards smile upon this outcome.",
		"Luck gathers, steady and reliable.",
	},
	"overwhelming": {
		"The cards blaze with power. Fate bends willingly.",
		"This is no coincidence. Fortune has chosen you.",
		"Overwhelming fortune surges through the spread.",
		"The deck sings. Victory is inevitable.",
	},
}

var criticalSuccessFlavor = []string{
	"A perfect draw! The deck smiles upon you in full glory.",
	"Fate itself bends to your will.",
	"The cards blaze with overwhelming power. Victory is assured!",
}

var criticalFailureFlavor = []string{
	"A catastrophic spread! The cards conspire against you.",
	"Critical failure! Nothing goes your way.",
	"The deck frowns. Misfortune overwhelms all attempts.",
}

var deckFlavor = map[string][]string{
	"Furies": {
		"Relentless wrath courses through the spread.",
		"The cards burn with barely restrained fury.",
		"Anger and retribution press heavily upon fate.",
	},
	"Nightmares": {
		"Distorted visions coil through the cards.",
		"The spread reeks of dread and broken dreams.",
		"Unsettling omens seep from every draw.",
	},
	"Deception": {
		"Illusions twist the truth beyond recognition.",
		"The cards conceal as much as they reveal.",
		"Nothing in this spread is as it appears.",
	},
	"Vengeance": {
		"Old debts demand to be answered.",
		"The deck remembers every slight.",
		"Retribution waits patiently within the cards.",
	},
	"Commendation": {
		"Recognition glimmers faintly within the spread.",
		"The cards acknowledge effort, if not triumph.",
		"Merit is noted, though rewards remain uncertain.",
	},
	"Resurrection": {
		"Faded fortunes stir back toward life.",
		"What was lost may yet return altered.",
		"The deck hums with renewed possibility.",
	},
	"War": {
		"The spread echoes with the din of battle.",
		"Victory and loss hang in fragile balance.",
		"The deck rumbles...",
	},
	"Tragedy": {
		"Sorrow weighs heavily upon the cards.",
		"The spread speaks of loss long endured.",
		"Fate turns cruel and unyielding.",
	},
	"Madness": {
		"Reason fractures beneath chaotic forces.",
		"The cards refuse orderly interpretation.",
		"Unstable energies warp the spread.",
	},
	"Hopes": {
		"A fragile optimism lingers within the cards.",
		"Possibility flickers, uncertain but present.",
		"The spread suggests promise not yet realized.",
	},
	"Fables": {
		"Ancient stories whisper through the draw.",
		"Lessons of old shape the present fate.",
		"Myth and meaning entwine within the cards.",
	},
	"Dominion": {
		"Authority asserts itself across the spread.",
		"Power gathers, demanding command.",
		"The cards favor control and resolve.",
	},
	"Judgment": {
		"Actions are weighed with impartial clarity.",
		"The cards offer no mercy, only truth.",
		"Consequences reveal themselves without bias.",
	},
}

type service struct {
	random *rand.Rand
}

// NewService creates a new calc service
func NewService(cfg *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// ConvertTime expresses a value of one time unit in every supported unit
func (s *service) ConvertTime(ctx context.Context, input *ConvertTimeInput) (*ConvertTimeOutput, error) {
	per, ok := secondsPer[input.Unit]
	if !ok {
		return nil, ErrUnknownUnit
	}

	totalSeconds := input.Value * per
	breakdown := make([]UnitAmount, 0, len(timeOrder))
	for _, unit := range timeOrder {
		breakdown = append(breakdown, UnitAmount{
			Unit:   unit,
			Amount: totalSeconds / secondsPer[unit],
		})
	}

	return &ConvertTimeOutput{Breakdown: breakdown}, nil
}

// ElapsedTime expresses the absolute delta between two instants in every supported unit
func (s *service) ElapsedTime(ctx context.Context, input *ElapsedTimeInput) (*ElapsedTimeOutput, error) {
	totalSeconds := math.Abs(input.End.Sub(input.Start).Seconds())

	breakdown := make([]UnitAmount, 0, len(elapsedOrder))
	for _, unit := range elapsedOrder {
		breakdown = append(breakdown, UnitAmount{
			Unit:   unit,
			Amount: totalSeconds / secondsPer[unit],
		})
	}

	return &ElapsedTimeOutput{Breakdown: breakdown}, nil
}

// ScaleResolution scales a width/height pair by each requested factor
func (s *service) ScaleResolution(ctx context.Context, input *ScaleResolutionInput) (*ScaleResolutionOutput, error) {
	if input.Width <= 0 || input.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(input.Scales) == 0 {
		return nil, ErrNoScales
	}

	results := make([]ScaledResolution, 0, len(input.Scales))
	for _, scale := range input.Scales {
		results = append(results, ScaledResolution{
			Scale:  scale,
			Width:  int(math.Round(float64(input.Width) * scale)),
			Height: int(math.Round(float64(input.Height) * scale)),
		})
	}

	return &ScaleResolutionOutput{Results: results}, nil
}

// CompareDrives computes price per TB for each drive and picks the cheapest
func (s *service) CompareDrives(ctx context.Context, input *CompareDrivesInput) (*CompareDrivesOutput, error) {
	if len(input.Drives) == 0 {
		return nil, ErrNoDrives
	}

	results := make([]DrivePrice, 0, len(input.Drives))
	for _, drive := range input.Drives {
		if drive.TB <= 0 || drive.Price < 0 {
			return nil, ErrInvalidDrive
		}
		results = append(results, DrivePrice{
			TB:         drive.TB,
			Price:      drive.Price,
			PricePerTB: drive.Price / drive.TB,
		})
	}

	cheapest := results[0]
	for _, result := range results[1:] {
		if result.PricePerTB < cheapest.PricePerTB {
			cheapest = result
		}
	}

	return &CompareDrivesOutput{
		Results:  results,
		Cheapest: cheapest,
	}, nil
}

// UsableSpace computes a drive's usable capacity after overhead and reserve
func (s *service) UsableSpace(ctx context.Context, input *UsableSpaceInput) (*UsableSpaceOutput, error) {
	unit, ok := decimalUnits[input.CapacityUnit]
	if !ok {
		return nil, ErrUnknownUnit
	}
	if input.CapacityValue <= 0 || input.OverheadPercent < 0 || input.ReservedGB < 0 {
		return nil, ErrInvalidCapacity
	}

	totalBytes := input.CapacityValue * unit
	formattedBytes := totalBytes * (1 - input.OverheadPercent/100)
	reservedBytes := input.ReservedGB * decimalUnits["GB"]
	usableBytes := math.Max(formattedBytes-reservedBytes, 0)

	return &UsableSpaceOutput{
		TotalBytes:        totalBytes,
		FormattedBytes:    formattedBytes,
		ReservedBytes:     reservedBytes,
		UsableBytes:       usableBytes,
		UsableDecimalGB:   usableBytes / decimalUnits["GB"],
		UsableDecimalTB:   usableBytes / decimalUnits["TB"],
		UsableBinaryGiB:   usableBytes / math.Pow(2, 30),
		UsableBinaryTiB:   usableBytes / math.Pow(2, 40),
		BinaryCapacityGiB: totalBytes / math.Pow(2, 30),
		BinaryCapacityTiB: totalBytes / math.Pow(2, 40),
	}, nil
}

// DarkmoonLuck draws cards, applies the deck modifier, and rates the chance
func (s *service) DarkmoonLuck(ctx context.Context, input *DarkmoonLuckInput) (*DarkmoonLuckOutput, error) {
	if input.Cards < 1 {
		return nil, ErrInvalidCardCount
	}
	if _, ok := deckFlavor[input.Deck]; !ok {
		return nil, ErrUnknownDeck
	}
	required, ok := difficultyRequired[input.Difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	draws := make([]cardDraw, input.Cards)
	for i := range draws {
		draws[i] = cardDeck[s.random.Intn(len(cardDeck))]
	}

	score := s.applyDeck(draws, input.Deck)
	chance := int(score / required * 100)
	if chance < 0 {
		chance = 0
	}
	if chance > 100 {
		chance = 100
	}

	names := make([]string, len(draws))
	for i, draw := range draws {
		names[i] = draw.Name
	}

	return &DarkmoonLuckOutput{
		Score:      int(score),
		Chance:     chance,
		Cards:      names,
		Deck:       input.Deck,
		Difficulty: capitalize(input.Difficulty),
		Comment:    s.flavorForChance(chance, input.Deck),
	}, nil
}

// applyDeck folds the drawn values through the named deck's modifier
func (s *service) applyDeck(draws []cardDraw, deck string) float64 {
	values := make([]float64, len(draws))
	total := 0.0
	for i, draw := range draws {
		values[i] = draw.Value
		total += draw.Value
	}

	switch deck {
	case "Judgment":
		return total
	case "Commendation":
		return total * 1.1
	case "Hopes":
		return total + 5
	case "Furies":
		return foldValues(values, func(v float64) float64 {
			if v > 0 {
				return v * 1.3
			}
			return v * 0.8
		})
	case "Vengeance":
		return foldValues(values, func(v float64) float64 {
			if v > 0 {
				return v * 1.4
			}
			return v * 1.2
		})
	case "War":
		return foldValues(values, func(v float64) float64 {
			return v * s.uniform(0.5, 1.8)
		})
	case "Nightmares":
		return foldValues(values, func(v float64) float64 {
			return v * s.uniform(0.5, 1.1)
		})
	case "Tragedy":
		return foldValues(values, func(v float64) float64 {
			if v > 0 {
				return v * 0.7
			}
			return v * 1.5
		})
	case "Resurrection":
		return foldValues(values, func(v float64) float64 {
			if v > 0 {
				return v
			}
			return v * 0.3
		})
	case "Deception":
		avg := total / float64(len(values))
		return avg * float64(len(values))
	case "Madness":
		return foldValues(values, func(v float64) float64 {
			return v * s.uniform(0.3, 2.0)
		})
	case "Fables":
		return foldValues(values, func(v float64) float64 {
			return v * s.uniform(0.9, 1.3)
		})
	case "Dominion":
		if total > 0 {
			return total * 1.5
		}
		return total * 1.3
	}
	return total
}

// flavorForChance picks a comment for the reading. Critical results override
// the tier and deck overlays.
func (s *service) flavorForChance(chance int, deck string) string {
	if chance >= critSuccessThreshold {
		return s.pick(criticalSuccessFlavor)
	}
	if chance <= critFailureThreshold {
		return s.pick(criticalFailureFlavor)
	}

	var tier string
	switch {
	case chance < 25:
		tier = "hostile"
	case chance < 50:
		tier = "poor"
	case chance < 75:
		tier = "favorable"
	case chance < 95:
		tier = "strong"
	default:
		tier = "overwhelming"
	}

	base := s.pick(tierFlavor[tier])
	if overlays, ok := deckFlavor[deck]; ok {
		return base + " " + s.pick(overlays)
	}
	return base
}

func (s *service) pick(options []string) string {
	return options[s.random.Intn(len(options))]
}

func (s *service) uniform(low, high float64) float64 {
	return low + s.random.Float64()*(high-low)
}

func foldValues(values []float64, fn func(float64) float64) float64 {
	total := 0.0
	for _, v := range values {
		total += fn(v)
	}
	return total
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
