// Package classifier wraps the pre-trained wine quality model.
package classifier

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"wineapi/internal/model"
)

// Classifier labels a feature vector as good or bad quality.
type Classifier interface {
	Classify(ctx context.Context, f model.Features) (model.Classification, error)
}

// Adapter turns a Predictor's binary output into a Classification.
type Adapter struct {
	predictor Predictor
}

// New returns an Adapter over an already loaded predictor.
func New(p Predictor) *Adapter {
	return &Adapter{predictor: p}
}

var _ Classifier = (*Adapter)(nil)

func (a *Adapter) Classify(ctx context.Context, f model.Features) (model.Classification, error) {
	_, span := otel.Tracer("wineapi/classifier").Start(ctx, "classifier.Classify")
	defer span.End()

	out := a.predictor.Predict(f)
	span.SetAttributes(attribute.Int("classifier.output", out))

	switch out {
	case 1:
		return model.ClassificationGood, nil
	case 0:
		return model.ClassificationBad, nil
	default:
		return "", fmt.Errorf("classifier returned unexpected output %d", out)
	}
}
