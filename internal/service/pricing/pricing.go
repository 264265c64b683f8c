package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Базовая ставка за тонну на километр.
var basePricePerTon = decimal.RequireFromString("10.00")

var kgPerTon = decimal.NewFromInt(1000)

// Пороговые значения веса в тоннах.
var (
	lowWeightThreshold = decimal.NewFromInt(10)
	optimalWeightMin   = decimal.NewFromInt(15)
	optimalWeightMax   = decimal.NewFromInt(20)
)

// Множители веса: дешевле всего возить 15-20 тонн.
var (
	lowWeightMultiplier     = decimal.RequireFromString("1.3")  // < 10 т
	mediumWeightMultiplier  = decimal.RequireFromString("1.1")  // 10-15 т
	optimalWeightMultiplier = decimal.RequireFromString("1.0")  // 15-20 т
	heavyWeightMultiplier   = decimal.RequireFromString("1.05") // > 20 т
)

// Множители по типу груза.
var (
	grainCargoMultiplier        = decimal.RequireFromString("1.0")
	sandCargoMultiplier         = decimal.RequireFromString("0.9")
	constructionCargoMultiplier = decimal.RequireFromString("1.1")
	metalCargoMultiplier        = decimal.RequireFromString("1.2")
	hazardousCargoMultiplier    = decimal.RequireFromString("1.5")
	otherCargoMultiplier        = decimal.RequireFromString("1.15")
)

type Service struct{}

func New() *Service {
	return &Service{}
}

// CalculatePrice считает стоимость перевозки: вес переводится в тонны
// (2 знака, округление half-up), базовая цена ставка*тонны*километры,
// затем множители веса и типа груза. Функция тотальная: неизвестный или
// пустой тип груза получает множитель "прочее" и никогда не ошибается.
func (s *Service) CalculatePrice(distanceKm, weightKg decimal.Decimal, cargoType string) decimal.Decimal {
	weightTons := weightKg.DivRound(kgPerTon, 2)

	basePrice := basePricePerTon.Mul(weightTons).Mul(distanceKm)

	finalPrice := basePrice.
		Mul(weightMultiplier(weightTons)).
		Mul(cargoTypeMultiplier(cargoType))

	return finalPrice.Round(2)
}

// Границы интервалов: 10 и 15 уходят в следующий тариф, 20 остаётся в
// оптимальном (интервалы <10, [10,15), [15,20], >20).
func weightMultiplier(weightTons decimal.Decimal) decimal.Decimal {
	switch {
	case weightTons.LessThan(lowWeightThreshold):
		return lowWeightMultiplier
	case weightTons.LessThan(optimalWeightMin):
		return mediumWeightMultiplier
	case weightTons.LessThanOrEqual(optimalWeightMax):
		return optimalWeightMultiplier
	default:
		return heavyWeightMultiplier
	}
}

func cargoTypeMultiplier(cargoType string) decimal.Decimal {
	switch strings.ToUpper(cargoType) {
	case "GRAIN", "WHEAT", "CORN", "BARLEY":
		return grainCargoMultiplier
	case "SAND", "GRAVEL":
		return sandCargoMultiplier
	case "CONSTRUCTION", "BUILDING_MATERIALS":
		return constructionCargoMultiplier
	case "METAL", "STEEL":
		return metalCargoMultiplier
	case "HAZARDOUS", "CHEMICALS":
		return hazardousCargoMultiplier
	default:
		return otherCargoMultiplier
	}
}
