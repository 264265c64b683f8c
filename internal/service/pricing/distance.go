package pricing

import (
	"hash/fnv"

	"github.com/shopspring/decimal"
)

// EstimateDistance возвращает детерминированную псевдо-дистанцию между двумя
// адресами: hash(start+end) mod 500 + 50, то есть всегда [50, 549] км.
//
// Это заглушка вместо настоящего routing API. Сервис заказов зависит от неё
// через интерфейс, так что замена на реального провайдера не трогает
// вызывающий код; единственный контракт — тотальность и стабильный результат
// для одинаковой пары адресов.
func (s *Service) EstimateDistance(startLocation, endLocation string) decimal.Decimal {
	h := fnv.New32a()
	h.Write([]byte(startLocation + endLocation))

	distanceKm := int64(h.Sum32()%500) + 50
	return decimal.NewFromInt(distanceKm).Round(2)
}
