package classifier

import (
	"math"

	"wineapi/internal/model"
)

// Predictor is a trained binary model: it returns 1 for good quality and 0
// otherwise. Implementations are read-only and safe for concurrent use.
type Predictor interface {
	Predict(x model.Features) int
}

func (s *Scaler) apply(x model.Features) model.Features {
	if s == nil {
		return x
	}
	for i := range x {
		x[i] = (x[i] - s.Mean[i]) / s.Scale[i]
	}
	return x
}

type logistic struct {
	scaler    *Scaler
	coef      model.Features
	intercept float64
	threshold float64
}

func (l *logistic) Predict(x model.Features) int {
	x = l.scaler.apply(x)
	z := l.intercept
	for i := range x {
		z += l.coef[i] * x[i]
	}
	if 1/(1+math.Exp(-z)) >= l.threshold {
		return 1
	}
	return 0
}

// ensemble predicts by majority vote; ties go to 0.
type ensemble struct {
	scaler *Scaler
	trees  []Tree
}

func (e *ensemble) Predict(x model.Features) int {
	x = e.scaler.apply(x)
	votes := 0
	for _, t := range e.trees {
		votes += t.predict(x)
	}
	if 2*votes > len(e.trees) {
		return 1
	}
	return 0
}

func (t Tree) predict(x model.Features) int {
	n := t.Nodes[0]
	for n.Left != -1 {
		if x[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}
	return n.Class
}
