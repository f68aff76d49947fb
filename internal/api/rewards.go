package rewards

import (
	"errors"
	"net/http"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	service "github.com/glkeru/loyalty/rewards/internal/services"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type RewardsHandler struct {
	router   *mux.Router
	service  *service.RewardsService
	verifier *service.Verifier
	logger   *zap.Logger
	validate *validatorv10.Validate
}

type CalculateRequest struct {
	PurchaseAmount          float64 `json:"purchaseAmount" validate:"gte=0"`
	SustainabilityScore     float64 `json:"sustainabilityScore" validate:"gte=0,lte=100"`
	UserLevel               string  `json:"userLevel"`
	DailyRewardsAccumulated float64 `json:"dailyRewardsAccumulated" validate:"gte=0"`
}

type CalculateResponse struct {
	Reward float64 `json:"reward"`
}

type StatusResponse struct {
	TransactionID uuid.UUID                `json:"transactionId"`
	Status        model.VerificationStatus `json:"status"`
}

func NewHandler(serv *service.RewardsService, verifier *service.Verifier, logger *zap.Logger) *RewardsHandler {
	router := mux.NewRouter()
	handler := &RewardsHandler{router, serv, verifier, logger, NewValidator()}
	router.Use(MiddlewareMetrics())
	router.HandleFunc("/purchases", handler.RecordPurchaseHandler).Methods(http.MethodPost)
	router.HandleFunc("/users/{address}/transactions", handler.UserTransactionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/users/{address}/profile", handler.ProfileHandler).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{id}/verification", handler.VerificationStatusHandler).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{id}/verify", handler.VerifyHandler).Methods(http.MethodPost)
	router.HandleFunc("/rewards/calculate", handler.CalculateHandler).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (h *RewardsHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *RewardsHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Запись покупки
func (h *RewardsHandler) RecordPurchaseHandler(w http.ResponseWriter, req *http.Request) {
	purchase := service.PurchaseRequest{}
	if h.bindAndValidate(w, req, &purchase) != nil {
		return
	}

	tx, err := h.service.RecordPurchase(req.Context(), purchase)
	if err != nil {
		h.Log("Record purchase", "RecordPurchaseHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// История покупок пользователя
func (h *RewardsHandler) UserTransactionsHandler(w http.ResponseWriter, req *http.Request) {
	address := mux.Vars(req)["address"]
	txs, err := h.service.UserTransactions(req.Context(), address)
	if err != nil {
		h.Log("DB get", "UserTransactionsHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

// Профиль: уровень, баланс, вклад
func (h *RewardsHandler) ProfileHandler(w http.ResponseWriter, req *http.Request) {
	address := mux.Vars(req)["address"]
	profile, err := h.service.Profile(req.Context(), address)
	if err != nil {
		h.Log("Profile", "ProfileHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profile.Transactions == nil {
		profile.Transactions = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, profile)
}

// Статус проверки транзакции
func (h *RewardsHandler) VerificationStatusHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "Transaction id is not correct", http.StatusBadRequest)
		return
	}
	status, err := h.service.VerificationStatus(req.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log("DB get", "VerificationStatusHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{id, status})
}

// Проверка транзакции вручную
func (h *RewardsHandler) VerifyHandler(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "Transaction id is not correct", http.StatusBadRequest)
		return
	}
	result, err := h.verifier.VerifyByID(req.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log("Verify", "VerifyHandler", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Расчет награды без записи
func (h *RewardsHandler) CalculateHandler(w http.ResponseWriter, req *http.Request) {
	calc := CalculateRequest{}
	if h.bindAndValidate(w, req, &calc) != nil {
		return
	}
	reward := service.CalculateReward(model.RewardParameters{
		PurchaseAmount:          calc.PurchaseAmount,
		SustainabilityScore:     calc.SustainabilityScore,
		UserLevel:               service.ParseUserLevel(calc.UserLevel),
		DailyRewardsAccumulated: calc.DailyRewardsAccumulated,
	})
	writeJSON(w, http.StatusOK, CalculateResponse{reward})
}
