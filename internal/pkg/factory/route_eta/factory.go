package route_eta

import (
	"time"

	"github.com/shopspring/decimal"
)

// средняя скорость гружёной фуры по трассе
const averageSpeedKmPerHour = 100

type RouteTimeFactory struct{}

func New() *RouteTimeFactory {
	return &RouteTimeFactory{}
}

// EstimateArrival — грубая оценка времени прибытия: дистанция делится на
// среднюю скорость. Пробки и погрузка не учитываются.
func (f *RouteTimeFactory) EstimateArrival(distanceKm decimal.Decimal, baseTime time.Time) time.Time {
	hours := distanceKm.Div(decimal.NewFromInt(averageSpeedKmPerHour))
	travel := time.Duration(hours.Mul(decimal.NewFromInt(int64(time.Hour))).IntPart())
	return baseTime.Add(travel)
}
