package rewards

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyVerified = errors.New("transaction is already verified")
	ErrInvalidAddress  = errors.New("invalid user address")
	ErrInvalidAmount   = errors.New("invalid reward amount")
)

// Уровень пользователя
type UserLevel string

const (
	LevelBeginner               UserLevel = "Beginner"
	LevelEcoConscious           UserLevel = "Eco-Conscious"
	LevelSustainabilityChampion UserLevel = "Sustainability Champion"
	LevelEcoWarrior             UserLevel = "Eco Warrior"
)

// Порядок уровней: чем выше, тем больше множитель
func (l UserLevel) Rank() int {
	switch l {
	case LevelEcoConscious:
		return 1
	case LevelSustainabilityChampion:
		return 2
	case LevelEcoWarrior:
		return 3
	default:
		return 0
	}
}

func (l UserLevel) Known() bool {
	switch l {
	case LevelBeginner, LevelEcoConscious, LevelSustainabilityChampion, LevelEcoWarrior:
		return true
	}
	return false
}

// Категория влияния товара на экологию
type ImpactTier int

const (
	TierDefault ImpactTier = iota
	TierMedium
	TierHigh
	TierVeryHigh
)

func (t ImpactTier) String() string {
	switch t {
	case TierVeryHigh:
		return "very-high"
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "default"
	}
}

// Статус покупки
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxCompleted TxStatus = "completed"
	TxFailed    TxStatus = "failed"
)

// Статус проверки транзакции
type VerificationStatus string

const (
	Unverified VerificationStatus = "unverified"
	Verified   VerificationStatus = "verified"
	Rejected   VerificationStatus = "rejected"
)

// verified и rejected - конечные статусы, переходов из них нет
func (s VerificationStatus) Terminal() bool {
	return s == Verified || s == Rejected
}

// Параметры расчета награды, создаются на каждый расчет
type RewardParameters struct {
	PurchaseAmount          float64   `json:"purchaseAmount"`
	SustainabilityScore     float64   `json:"sustainabilityScore"`
	UserLevel               UserLevel `json:"userLevel"`
	DailyRewardsAccumulated float64   `json:"dailyRewardsAccumulated"`
}

// Снимок товара на момент покупки, после записи не меняется
type Product struct {
	ID        string  `bson:"id" json:"id" validate:"required"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Currency  string  `bson:"currency" json:"currency"`
	Condition string  `bson:"condition" json:"condition" validate:"required"`
	Category  string  `bson:"category" json:"category" validate:"required"`
	Seller    string  `bson:"seller" json:"seller"`
	URL       string  `bson:"url" json:"url"`
}

type Transaction struct {
	ID                  uuid.UUID          `bson:"id" json:"id"`
	UserAddress         string             `bson:"user_address" json:"userAddress"`
	ProductID           string             `bson:"product_id" json:"productId"`
	ProductDetails      Product            `bson:"product_details" json:"productDetails"`
	PurchaseAmount      float64            `bson:"purchase_amount" json:"purchaseAmount"`
	RewardAmount        float64            `bson:"reward_amount" json:"rewardAmount"`
	TxHash              string             `bson:"tx_hash" json:"txHash"`
	Platform            string             `bson:"platform" json:"platform"`
	Status              TxStatus           `bson:"status" json:"status"`
	VerificationStatus  VerificationStatus `bson:"verification_status" json:"verificationStatus"`
	SustainabilityScore int                `bson:"sustainability_score" json:"sustainabilityScore"`
	CreatedAt           time.Time          `bson:"created_at" json:"createdAt"`
}

// Результат проверки
type Verification struct {
	TransactionID       uuid.UUID          `json:"transactionId"`
	Status              VerificationStatus `json:"status"`
	IsSecondHand        bool               `json:"isSecondHand"`
	SustainabilityScore int                `json:"sustainabilityScore"`
	Details             string             `json:"details"`
}

// Оценка вклада пользователя
type ImpactReport struct {
	CO2SavedKg           float64 `json:"co2Saved"`
	ItemsRecycled        int     `json:"itemsRecycled"`
	TreesEquivalent      int     `json:"treesEquivalent"`
	SustainablePurchases int     `json:"sustainablePurchases"`
}

// Сбереженные ресурсы по категориям купленных товаров
type CategoryImpact struct {
	CO2Kg       float64 `json:"co2"`
	WaterLiters float64 `json:"water"`
	WasteKg     float64 `json:"waste"`
}

type Profile struct {
	UserAddress    string         `json:"userAddress"`
	Level          UserLevel      `json:"level"`
	AverageScore   int            `json:"averageScore"`
	Transactions   []Transaction  `json:"transactions"`
	Balance        float64        `json:"balance"`
	Impact         ImpactReport   `json:"impact"`
	CategoryImpact CategoryImpact `json:"categoryImpact"`
}

// Запрос на начисление токенов после успешной проверки
type DistributionRequest struct {
	TransactionID uuid.UUID `json:"transactionId"`
	UserAddress   string    `json:"userAddress"`
	Amount        float64   `json:"amount"`
}

type DistributionConfirm struct {
	TransactionID uuid.UUID `json:"transactionId"`
	Success       bool      `json:"success"`
}

// Начисление на счет наград
type LedgerEntry struct {
	UUID          uuid.UUID
	Account       uuid.UUID
	Amount        float64
	TransactionID uuid.UUID
	CreatedAt     time.Time
}
