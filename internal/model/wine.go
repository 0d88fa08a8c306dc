package model

// Classification is the quality label assigned to a wine sample by the classifier.
type Classification string

const (
	ClassificationGood Classification = "GOOD"
	ClassificationBad  Classification = "BAD"
)

// FeatureCount is the number of physicochemical attributes fed to the classifier.
const FeatureCount = 11

// FeatureNames lists the classifier inputs in the order the model was trained on.
// Features() and the model artifact must both follow this order.
var FeatureNames = [FeatureCount]string{
	"fixed_acidity",
	"volatile_acidity",
	"citric_acid",
	"residual_sugar",
	"chlorides",
	"free_sulfur_dioxide",
	"total_sulfur_dioxide",
	"density",
	"ph",
	"sulphates",
	"alcohol",
}

// Features is an ordered feature vector, indexed like FeatureNames.
type Features [FeatureCount]float64

// WineSample is the caller-supplied description of a wine.
// IdentityDocument holds the raw supplier document and must never be persisted as is.
type WineSample struct {
	Name               string  `json:"name"`
	Supplier           string  `json:"supplier"`
	IdentityDocument   string  `json:"identity_document"`
	FixedAcidity       float64 `json:"fixed_acidity"`
	VolatileAcidity    float64 `json:"volatile_acidity"`
	CitricAcid         float64 `json:"citric_acid"`
	ResidualSugar      float64 `json:"residual_sugar"`
	Chlorides          float64 `json:"chlorides"`
	FreeSulfurDioxide  float64 `json:"free_sulfur_dioxide"`
	TotalSulfurDioxide float64 `json:"total_sulfur_dioxide"`
	Density            float64 `json:"density"`
	PH                 float64 `json:"ph"`
	Sulphates          float64 `json:"sulphates"`
	Alcohol            float64 `json:"alcohol"`
}

// Features maps the named attributes onto the classifier's input order.
func (s WineSample) Features() Features {
	return Features{
		s.FixedAcidity,
		s.VolatileAcidity,
		s.CitricAcid,
		s.ResidualSugar,
		s.Chlorides,
		s.FreeSulfurDioxide,
		s.TotalSulfurDioxide,
		s.Density,
		s.PH,
		s.Sulphates,
		s.Alcohol,
	}
}

// WineRecord is a stored wine sample. IdentityDocument is always in anonymized form.
type WineRecord struct {
	ID int64 `json:"id"`
	WineSample
	Classification Classification `json:"classification"`
}
