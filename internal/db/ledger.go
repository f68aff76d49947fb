package rewards

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	uuid    UUID PRIMARY KEY,
	userid  TEXT NOT NULL UNIQUE,
	balance NUMERIC(18,2) NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS rewards (
	id            UUID PRIMARY KEY,
	account       UUID NOT NULL REFERENCES accounts(uuid),
	amount        NUMERIC(18,2) NOT NULL,
	transactionid UUID NOT NULL UNIQUE,
	createdat     TIMESTAMPTZ NOT NULL
);`

// Счета наград в Postgres
type LedgerDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLedgerDB(logger *zap.Logger) (db *LedgerDB, err error) {
	// config
	purl := os.Getenv("REWARDS_DB")
	if purl == "" {
		return nil, fmt.Errorf("env REWARDS_DB is not set")
	}
	port := os.Getenv("REWARDS_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env REWARDS_DB_PORT is not set")
	}
	user := os.Getenv("REWARDS_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env REWARDS_DB_USER is not set")
	}
	password := os.Getenv("REWARDS_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env REWARDS_DB_PASSWORD is not set")
	}
	database := os.Getenv("REWARDS_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env REWARDS_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	_, err = pool.Exec(context.Background(), ledgerSchema)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &LedgerDB{pool, logger}, nil
}

func (p *LedgerDB) Close() {
	p.pool.Close()
}

func (p *LedgerDB) logSQL(err error, sql string, args []interface{}) {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// Начисление на счет пользователя. Повторное начисление по той же транзакции пропускается.
func (p *LedgerDB) Credit(ctx context.Context, user string, amount float64, transactionId uuid.UUID) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// счет создается при первом начислении
	sql, args, err := createAccountQuery(user)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return err
	}

	// блокируем строку с балансом
	var pguuid pgtype.UUID
	row := tx.QueryRow(ctx, "SELECT uuid FROM accounts WHERE userid = $1 FOR UPDATE", user)
	err = row.Scan(&pguuid)
	if err != nil {
		return err
	}
	account, _ := uuid.FromBytes(pguuid.Bytes[:])

	// транзакция уже начислена
	var exists bool
	row = tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM rewards WHERE transactionid = $1)", transactionId)
	err = row.Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		p.logger.Info("Duplicate credit skipped",
			zap.String("user", user),
			zap.String("transaction", transactionId.String()),
		)
		return tx.Commit(ctx)
	}

	sql, args, err = insertRewardQuery(uuid.New(), account, amount, transactionId, time.Now().UTC())
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return err
	}

	sql, args, err = creditBalanceQuery(account, amount)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return err
	}
	return tx.Commit(ctx)
}

// Получить баланс
func (p *LedgerDB) GetBalance(ctx context.Context, user string) (points float64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	var balance pgtype.Numeric
	row := conn.QueryRow(ctx, "SELECT balance FROM accounts WHERE userid = $1", user)
	err = row.Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return 0, err
	}
	err = balance.AssignTo(&points)
	return points, err
}

// Начисления пользователя, новые первыми
func (p *LedgerDB) GetEntries(ctx context.Context, user string) (entries []model.LedgerEntry, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := entriesQuery(user)
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, account, transaction pgtype.UUID
		var amount pgtype.Numeric
		var entry model.LedgerEntry
		err = rows.Scan(&id, &account, &amount, &transaction, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		entry.UUID, _ = uuid.FromBytes(id.Bytes[:])
		entry.Account, _ = uuid.FromBytes(account.Bytes[:])
		entry.TransactionID, _ = uuid.FromBytes(transaction.Bytes[:])
		err = amount.AssignTo(&entry.Amount)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("rewards %w", model.ErrNotFound)
	}
	return entries, nil
}

func createAccountQuery(user string) (string, []interface{}, error) {
	return sq.Insert("accounts").
		Columns("uuid", "userid", "balance").
		Values(uuid.New(), user, 0).
		Suffix("ON CONFLICT (userid) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func insertRewardQuery(id, account uuid.UUID, amount float64, transactionId uuid.UUID, created time.Time) (string, []interface{}, error) {
	return sq.Insert("rewards").
		Columns("id", "account", "amount", "transactionid", "createdat").
		Values(id, account, amount, transactionId, created).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func creditBalanceQuery(account uuid.UUID, amount float64) (string, []interface{}, error) {
	return sq.Update("accounts").
		Set("balance", sq.Expr("balance + ?", amount)).
		Where(sq.Eq{"uuid": account}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func entriesQuery(user string) (string, []interface{}, error) {
	return sq.Select("r.id", "r.account", "r.amount", "r.transactionid", "r.createdat").
		From("rewards r").
		Join("accounts a ON a.uuid = r.account").
		Where(sq.Eq{"a.userid": user}).
		OrderBy("r.createdat DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
