package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/y-ohta/magpie/pkg/model"
	"google.golang.org/genai"
)

//go:embed prompt/analyze.md
var analyzePromptRaw string

var (
	ErrEmptyImage       = goerr.New("image payload is empty")
	ErrUnsupportedImage = goerr.New("unsupported image media type")
)

// ImagePayload is one captured image ready to be analyzed
type ImagePayload struct {
	Data     []byte
	MIMEType string
	Ref      string // local reference stored on the resulting item
}

// Validate checks the payload before it is sent to the analysis service
func (x *ImagePayload) Validate() error {
	if len(x.Data) == 0 {
		return ErrEmptyImage
	}
	if !strings.HasPrefix(x.MIMEType, "image/") {
		return goerr.Wrap(ErrUnsupportedImage, "media type must be an image format",
			goerr.V("mimeType", x.MIMEType))
	}
	return nil
}

// analyzeSchema declares the structure the model must return: exactly four
// required string properties.
var analyzeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"itemName": {
			Type:        genai.TypeString,
			Description: "A short, concise name for the item.",
		},
		"description": {
			Type:        genai.TypeString,
			Description: "A detailed description of the item, highlighting key features.",
		},
		"estimatedPrice": {
			Type:        genai.TypeString,
			Description: `An estimated market price in USD, formatted as a string (e.g., "$100.00").`,
		},
		"category": {
			Type:        genai.TypeString,
			Description: "A single, relevant category for the item.",
		},
	},
	Required: []string{"itemName", "description", "estimatedPrice", "category"},
}

// Analyze submits one image to the analysis service and parses the
// structured result. All-or-nothing: any service failure, schema deviation
// or empty field fails the whole call. No retry, no timeout.
func (u *UseCase) Analyze(ctx context.Context, image ImagePayload) (*model.AnalyzedItem, error) {
	if err := image.Validate(); err != nil {
		return nil, err
	}
	if u.gemini == nil {
		return nil, goerr.New("analysis client is not configured")
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						Data:     image.Data,
						MIMEType: image.MIMEType,
					},
				},
				{Text: analyzePromptRaw},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analyzeSchema,
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to analyze image")
	}

	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, goerr.New("analysis response has no content")
	}

	jsonText := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)

	var analyzed model.AnalyzedItem
	if err := json.Unmarshal([]byte(jsonText), &analyzed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse analysis response",
			goerr.V("response", jsonText))
	}

	if err := analyzed.Validate(); err != nil {
		return nil, goerr.Wrap(err, "analysis response is incomplete")
	}

	return &analyzed, nil
}
