package rewards

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionsDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewTransactionsDB() (*TransactionsDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("REWARDS_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env REWARDS_MONGO is not set")
	}

	opts := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	coll := client.Database("rewardsDB").Collection("transactions")

	// индексы: уникальный id и история пользователя
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_address", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "verification_status", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}

	return &TransactionsDB{client, coll}, nil
}

func (t *TransactionsDB) Close(ctx context.Context) error {
	return t.mgo.Disconnect(ctx)
}

func (t *TransactionsDB) Insert(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	_, err := t.coll.InsertOne(ctx, tx)
	if err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func (t *TransactionsDB) Get(ctx context.Context, id uuid.UUID) (tx model.Transaction, err error) {
	err = t.coll.FindOne(ctx, idFilter(id)).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Transaction{}, fmt.Errorf("transaction %s %w", id, model.ErrNotFound)
	}
	return tx, err
}

// Смена статуса проверки только из unverified
func (t *TransactionsDB) UpdateVerification(ctx context.Context, id uuid.UUID, status model.VerificationStatus) error {
	update := bson.M{"$set": bson.M{"verification_status": status}}
	result, err := t.coll.UpdateOne(ctx, unverifiedFilter(id), update)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// запись не найдена или уже проверена
	count, err := t.coll.CountDocuments(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("transaction %s %w", id, model.ErrNotFound)
	}
	return model.ErrAlreadyVerified
}

// История пользователя, новые первыми
func (t *TransactionsDB) ListByUser(ctx context.Context, user string) ([]model.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := t.coll.Find(ctx, bson.M{"user_address": user}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cursor)
}

// Непроверенные транзакции, созданные раньше before
func (t *TransactionsDB) ListUnverified(ctx context.Context, before time.Time) ([]model.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := t.coll.Find(ctx, pendingFilter(before), opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cursor)
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]model.Transaction, error) {
	defer cursor.Close(ctx)
	var txs []model.Transaction
	for cursor.Next(ctx) {
		var tx model.Transaction
		err := cursor.Decode(&tx)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, cursor.Err()
}

func idFilter(id uuid.UUID) bson.M {
	return bson.M{"id": id}
}

func unverifiedFilter(id uuid.UUID) bson.M {
	return bson.M{"id": id, "verification_status": model.Unverified}
}

func pendingFilter(before time.Time) bson.M {
	return bson.M{
		"verification_status": model.Unverified,
		"created_at":          bson.M{"$lt": before},
	}
}
