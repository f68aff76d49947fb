package rewards

import (
	"strings"

	model "github.com/glkeru/loyalty/rewards/internal/models"
)

const (
	baseSecondHandScore = 50
	maxScore            = 100
)

// Состояния товара, которые считаются б/у.
// "like new" входит в набор, просто "new" - нет.
var secondHandConditions = map[string]struct{}{
	"used":        {},
	"refurbished": {},
	"pre-owned":   {},
	"good":        {},
	"fair":        {},
	"excellent":   {},
	"like new":    {},
}

type tierRule struct {
	tier     model.ImpactTier
	keywords []string
}

// порядок важен: побеждает первое совпадение
var tierRules = []tierRule{
	{model.TierVeryHigh, []string{"electronics", "computer", "phone"}},
	{model.TierVeryHigh, []string{"furniture", "home"}},
	{model.TierHigh, []string{"clothing", "apparel", "fashion"}},
	{model.TierHigh, []string{"audio", "headphone", "speaker"}},
	{model.TierMedium, []string{"book", "media"}},
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func IsSecondHand(condition string) bool {
	_, ok := secondHandConditions[normalize(condition)]
	return ok
}

func ConditionBonus(condition string) int {
	switch normalize(condition) {
	case "like new", "excellent":
		return 30
	case "good":
		return 25
	case "fair":
		return 20
	default:
		return 15
	}
}

// Категория влияния по подстроке в названии категории
func CategoryTier(category string) model.ImpactTier {
	c := normalize(category)
	for _, rule := range tierRules {
		for _, k := range rule.keywords {
			if strings.Contains(c, k) {
				return rule.tier
			}
		}
	}
	return model.TierDefault
}

func TierBonus(tier model.ImpactTier) int {
	switch tier {
	case model.TierVeryHigh:
		return 20
	case model.TierHigh:
		return 15
	case model.TierMedium:
		return 10
	default:
		return 5
	}
}

// Оценка экологичности покупки 0..100, считается по снимку товара
func SustainabilityScore(product model.Product) int {
	score := baseSecondHandScore
	score += ConditionBonus(product.Condition)
	score += TierBonus(CategoryTier(product.Category))
	if score > maxScore {
		return maxScore
	}
	return score
}
