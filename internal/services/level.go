package rewards

import (
	"math"
	"strings"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/shopspring/decimal"
)

const (
	co2PerPurchaseKg    = 5.0
	itemsPerPurchase    = 1.5
	co2PerTreePerYearKg = 25.0
)

// Средняя оценка экологичности по истории покупок
func AverageScore(txs []model.Transaction) int {
	if len(txs) == 0 {
		return 0
	}
	var total int
	for _, tx := range txs {
		total += tx.SustainabilityScore
	}
	avg := int(math.Round(float64(total) / float64(len(txs))))
	if avg > maxScore {
		return maxScore
	}
	return avg
}

// Уровень по количеству покупок и средней оценке
func DeriveLevel(txs []model.Transaction) model.UserLevel {
	count := len(txs)
	score := AverageScore(txs)
	switch {
	case count >= 20 && score >= 80:
		return model.LevelEcoWarrior
	case count >= 10 && score >= 70:
		return model.LevelSustainabilityChampion
	case count >= 5 && score >= 60:
		return model.LevelEcoConscious
	default:
		return model.LevelBeginner
	}
}

func CalculateImpact(purchases int) model.ImpactReport {
	if purchases < 0 {
		purchases = 0
	}
	co2 := float64(purchases) * co2PerPurchaseKg
	return model.ImpactReport{
		CO2SavedKg:           co2,
		ItemsRecycled:        int(math.Floor(float64(purchases) * itemsPerPurchase)),
		TreesEquivalent:      int(math.Ceil(co2 / co2PerTreePerYearKg)),
		SustainablePurchases: purchases,
	}
}

type impactRule struct {
	keywords []string
	co2      float64
	water    float64
	waste    float64
}

// порядок отличается от tierRules: одежда проверяется раньше электроники и дома
var impactRules = []impactRule{
	{[]string{"clothing", "apparel", "fashion"}, 10.2, 2700, 0.5},
	{[]string{"electronics", "phone", "computer"}, 80.5, 12800, 0.15},
	{[]string{"book", "media"}, 6.3, 3400, 0.3},
	{[]string{"furniture", "home"}, 100, 5000, 25},
	{[]string{"audio", "headphone", "speaker"}, 25, 4000, 0.3},
}

var defaultImpact = impactRule{co2: 15, water: 3000, waste: 1}

func categoryImpactRule(category string) impactRule {
	c := normalize(category)
	for _, rule := range impactRules {
		for _, k := range rule.keywords {
			if strings.Contains(c, k) {
				return rule
			}
		}
	}
	return defaultImpact
}

// Сбереженные CO2, вода и отходы по категориям всех покупок.
// CO2 и отходы округляются до 0.1, вода до литра.
func CalculateCategoryImpact(txs []model.Transaction) model.CategoryImpact {
	co2, water, waste := decimal.Zero, decimal.Zero, decimal.Zero
	for _, tx := range txs {
		rule := categoryImpactRule(tx.ProductDetails.Category)
		co2 = co2.Add(decimal.NewFromFloat(rule.co2))
		water = water.Add(decimal.NewFromFloat(rule.water))
		waste = waste.Add(decimal.NewFromFloat(rule.waste))
	}
	return model.CategoryImpact{
		CO2Kg:       co2.Round(1).InexactFloat64(),
		WaterLiters: water.Round(0).InexactFloat64(),
		WasteKg:     waste.Round(1).InexactFloat64(),
	}
}
