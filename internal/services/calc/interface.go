package calc

import "context"

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/KirkDiggler/deathroll/internal/services/calc Service

// Service runs the stateless unit calculators
type Service interface {
	// ConvertTime expresses a value of one time unit in every supported unit
	ConvertTime(ctx context.Context, input *ConvertTimeInput) (*ConvertTimeOutput, error)

	// ElapsedTime expresses the absolute delta between two instants in every supported unit
	ElapsedTime(ctx context.Context, input *ElapsedTimeInput) (*ElapsedTimeOutput, error)

	// ScaleResolution scales a width/height pair by each requested factor
	ScaleResolution(ctx context.Context, input *ScaleResolutionInput) (*ScaleResolutionOutput, error)

	// CompareDrives computes price per TB for each drive and picks the cheapest
	CompareDrives(ctx context.Context, input *CompareDrivesInput) (*CompareDrivesOutput, error)

	// UsableSpace computes a drive's usable capacity after overhead and reserve
	UsableSpace(ctx context.Context, input *UsableSpaceInput) (*UsableSpaceOutput, error)

	// DarkmoonLuck draws cards, applies the deck modifier, and rates the chance
	DarkmoonLuck(ctx context.Context, input *DarkmoonLuckInput) (*DarkmoonLuckOutput, error)
}
