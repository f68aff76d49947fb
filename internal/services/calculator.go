package rewards

import (
	"math"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/shopspring/decimal"
)

const (
	MinPurchaseAmount        = 5.0   // минимальная сумма покупки для награды
	BaseRewardRate           = 0.02  // 2% от суммы покупки
	SustainabilityMultiplier = 1.5   // множитель за экологичность
	MaxDailyRewards          = 100.0 // лимит токенов в день
)

// Множитель уровня, неизвестный уровень считается как Beginner
func LevelMultiplier(level model.UserLevel) float64 {
	switch level {
	case model.LevelEcoConscious:
		return 1.2
	case model.LevelSustainabilityChampion:
		return 1.5
	case model.LevelEcoWarrior:
		return 2.0
	default:
		return 1.0
	}
}

// Расчет награды за покупку
func CalculateReward(params model.RewardParameters) float64 {
	// NaN тоже отсекается
	if !(params.PurchaseAmount >= MinPurchaseAmount) || math.IsInf(params.PurchaseAmount, 1) {
		return 0
	}

	reward := decimal.NewFromFloat(params.PurchaseAmount).Mul(decimal.NewFromFloat(BaseRewardRate))

	// экологичность 0..100 -> 0..1
	normalized := params.SustainabilityScore / 100
	switch {
	case math.IsNaN(normalized) || normalized < 0:
		normalized = 0
	case normalized > 1:
		normalized = 1
	}
	reward = reward.Mul(decimal.NewFromFloat(1 + normalized*SustainabilityMultiplier))
	reward = reward.Mul(decimal.NewFromFloat(LevelMultiplier(params.UserLevel)))
	reward = reward.Round(2)

	reward = ClampToDailyCap(reward, params.DailyRewardsAccumulated)
	if reward.IsNegative() {
		return 0
	}
	return reward.InexactFloat64()
}

// Награда в пределах остатка дневного лимита.
// Остаток считается в decimal и округляется вниз до цента.
func ClampToDailyCap(reward decimal.Decimal, accumulated float64) decimal.Decimal {
	switch {
	case math.IsNaN(accumulated):
		accumulated = 0
	case math.IsInf(accumulated, 1):
		return decimal.Zero
	case math.IsInf(accumulated, -1):
		return reward
	}
	limit := decimal.NewFromFloat(MaxDailyRewards).Sub(decimal.NewFromFloat(accumulated)).Truncate(2)
	if !limit.IsPositive() {
		return decimal.Zero
	}
	if reward.GreaterThan(limit) {
		return limit
	}
	return reward
}

// Уровень из строки, неизвестное значение -> Beginner
func ParseUserLevel(s string) model.UserLevel {
	level := model.UserLevel(s)
	if level.Known() {
		return level
	}
	return model.LevelBeginner
}
