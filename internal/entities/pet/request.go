package pet

// Form defaults
const (
	DefaultName         = "이름"
	DefaultTempID       = "9999"
	DefaultImageID      = "100000"
	DefaultTotal        = 100
	DefaultInitialValue = 30
)

// GenerationRequest is the form snapshot taken when generate is invoked
type GenerationRequest struct {
	Name              string          `json:"name"`
	TempID            string          `json:"temp_id"`
	ImageID           string          `json:"image_id"`
	Total             Number          `json:"total"`
	InitialValue      Number          `json:"initial_value"`
	Concept           Concept         `json:"concept"`
	Elements          ElementAffinity `json:"elements"`
	CaptureDifficulty int             `json:"capture_difficulty"`
	Rarity            int             `json:"rarity"`
}

// DefaultRequest returns a request holding every form default
func DefaultRequest() GenerationRequest {
	return GenerationRequest{
		ImageID:      DefaultImageID,
		Total:        NumberOf(DefaultTotal),
		InitialValue: NumberOf(DefaultInitialValue),
		Concept:      ConceptBalanced,
		Elements:     DefaultElements(),
	}
}

// DisplayName returns the name written to the export record
func (r GenerationRequest) DisplayName() string {
	if r.Name == "" {
		return DefaultName
	}
	return r.Name
}

// ExportID returns the temp id written to the export record
func (r GenerationRequest) ExportID() string {
	if r.TempID == "" {
		return DefaultTempID
	}
	return r.TempID
}
