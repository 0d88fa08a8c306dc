package classifier

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"wineapi/internal/model"
)

// Instrumented counts classifications per label.
type Instrumented struct {
	next   Classifier
	labels *prometheus.CounterVec
}

// NewInstrumented wraps next and registers the classification counter on reg.
func NewInstrumented(next Classifier, reg prometheus.Registerer) (*Instrumented, error) {
	c := &Instrumented{
		next: next,
		labels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wine_classifications_total",
				Help: "Total number of wine samples classified, by label.",
			},
			[]string{"label"},
		),
	}
	if err := reg.Register(c.labels); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Instrumented) Classify(ctx context.Context, f model.Features) (model.Classification, error) {
	label, err := c.next.Classify(ctx, f)
	if err != nil {
		return "", err
	}
	c.labels.WithLabelValues(string(label)).Inc()
	return label, nil
}
