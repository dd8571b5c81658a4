package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// VisionService is the detection collaborator: it turns a fridge/shelf photo
// into draft item candidates. Detections are tentative by definition — they
// always land as drafts, never directly in inventory.
type VisionService struct {
	client *rekognition.Client
}

func NewVisionService() (*VisionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &VisionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// One food item detected in an image.
type DetectedItem struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 0–1
}

// Rekognition label names that are too generic to be useful as item names.
var genericLabels = map[string]struct{}{
	"food": {}, "produce": {}, "plant": {}, "meal": {}, "dish": {},
	"grocery": {}, "groceries": {}, "ingredient": {}, "refrigerator": {},
}

// keyword → category mapping for detected labels, first match wins.
// Anything unmatched falls into "Other" and stays editable on the draft.
var labelCategories = []struct {
	keyword  string
	category string
}{
	{"juice", "Beverages"}, {"soda", "Beverages"}, {"beverage", "Beverages"},
	{"milk", "Dairy"}, {"cheese", "Dairy"}, {"yogurt", "Dairy"},
	{"butter", "Dairy"}, {"egg", "Dairy"}, {"cream", "Dairy"},
	{"chicken", "Meat"}, {"beef", "Meat"}, {"pork", "Meat"}, {"meat", "Meat"},
	{"salmon", "Fish"}, {"seafood", "Fish"}, {"shrimp", "Fish"}, {"fish", "Fish"},
	{"tomato", "Vegetables"}, {"carrot", "Vegetables"}, {"lettuce", "Vegetables"},
	{"onion", "Vegetables"}, {"pepper", "Vegetables"}, {"vegetable", "Vegetables"},
	{"apple", "Fruits"}, {"banana", "Fruits"}, {"orange", "Fruits"},
	{"berry", "Fruits"}, {"citrus", "Fruits"}, {"grape", "Fruits"}, {"fruit", "Fruits"},
	{"bread", "Grains"}, {"pasta", "Grains"}, {"rice", "Grains"}, {"cereal", "Grains"},
	{"sauce", "Condiments"}, {"ketchup", "Condiments"}, {"mustard", "Condiments"},
}

func categorizeLabel(name string) string {
	lower := strings.ToLower(name)
	for _, e := range labelCategories {
		if strings.Contains(lower, e.keyword) {
			return e.category
		}
	}
	return "Other"
}

// DetectItems runs label detection on a base64 data-URI image and returns
// food item candidates with their confidence scores.
func (v *VisionService) DetectItems(base64Img string) ([]DetectedItem, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, fmt.Errorf("%w: expected a data:image base64 URI", ErrValidation)
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out, err := v.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(15),
		MinConfidence: aws.Float32(70),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var items []DetectedItem
	for _, l := range out.Labels {
		name := aws.ToString(l.Name)
		if _, skip := genericLabels[strings.ToLower(name)]; skip {
			continue
		}
		items = append(items, DetectedItem{
			Name:       name,
			Category:   categorizeLabel(name),
			Confidence: float64(aws.ToFloat32(l.Confidence)) / 100,
		})
	}
	return items, nil
}
