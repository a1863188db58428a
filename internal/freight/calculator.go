package freight

import (
	"strings"
)

// CoverageClass is the delivery pricing tier of a locality.
type CoverageClass string

const (
	CoverageLocal       CoverageClass = "local"       // Campina Grande
	CoverageNeighboring CoverageClass = "neighboring" // cities within ~20km
	CoverageOther       CoverageClass = "other"       // unknown, charged at the neighboring tier
)

// PaymentMethod is the normalized payment option.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

// ValidationError is a missing/unrecognized input. Distinct from an
// unknown locality, which is never an error and silently falls back to
// the default region fee.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

const (
	ErrMissingCity          = "missing_city"
	ErrMissingPaymentMethod = "missing_payment_method"
	ErrInvalidPaymentMethod = "invalid_payment_method"
)

// Quote is the freight answer for a (locality, payment method) pair.
type Quote struct {
	Fee           float64       `json:"fee"`
	Currency      string        `json:"currency"`
	CoverageClass CoverageClass `json:"coverage_class"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	City          string        `json:"city"`
}

// Fee table: delivery is free in Campina Grande on PIX; neighboring
// cities up to 20km ride the higher tier.
var fees = map[CoverageClass]map[PaymentMethod]float64{
	CoverageLocal:       {PaymentPix: 0.00, PaymentCard: 10.00},
	CoverageNeighboring: {PaymentPix: 15.00, PaymentCard: 25.00},
}

// localPatterns match the shop's own city.
var localPatterns = []string{"campina grande", "campina"}

// neighboringCities is the allow-list of towns within the ~20km delivery
// belt around Campina Grande.
var neighboringCities = []string{
	"puxinana",
	"lagoa seca",
	"queimadas",
	"massaranduba",
	"boa vista",
	"alagoa nova",
	"esperanca",
	"montadas",
	"pocinhos",
	"areial",
	"matinhas",
	"serra redonda",
	"fagundes",
	"caturite",
}

// Calculate quotes the delivery fee. Pure lookup: no state, no clock, no
// randomness. The caller must supply both inputs; the calculator never
// guesses a payment method.
func Calculate(city, paymentMethod string) (*Quote, error) {
	if strings.TrimSpace(city) == "" {
		return nil, &ValidationError{Code: ErrMissingCity}
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, &ValidationError{Code: ErrMissingPaymentMethod}
	}

	method, ok := normalizePayment(paymentMethod)
	if !ok {
		return nil, &ValidationError{Code: ErrInvalidPaymentMethod}
	}

	class := classifyCity(city)
	tier := class
	if tier == CoverageOther {
		tier = CoverageNeighboring
	}

	return &Quote{
		Fee:           fees[tier][method],
		Currency:      "BRL",
		CoverageClass: class,
		PaymentMethod: method,
		City:          strings.TrimSpace(city),
	}, nil
}

func classifyCity(city string) CoverageClass {
	normalized := normalizeText(city)

	for _, p := range localPatterns {
		if strings.Contains(normalized, p) {
			return CoverageLocal
		}
	}
	for _, n := range neighboringCities {
		if strings.Contains(normalized, n) {
			return CoverageNeighboring
		}
	}
	return CoverageOther
}

func normalizePayment(method string) (PaymentMethod, bool) {
	switch normalizeText(method) {
	case "pix":
		return PaymentPix, true
	case "card", "cartao", "credito", "debito", "cartao de credito", "cartao de debito":
		return PaymentCard, true
	default:
		return "", false
	}
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

// normalizeText lowercases and strips accents, the same normalization the
// locality allow-lists are written in.
func normalizeText(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
