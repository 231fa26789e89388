// Package repomanager hands out repositories bound to either the shared
// connection pool or a transaction, so services can run multi-statement
// operations atomically.
package repomanager

import (
	"github.com/tunckiral/pocketledger/internal/dbx"
	"github.com/tunckiral/pocketledger/internal/repositories/accountbooks"
	"github.com/tunckiral/pocketledger/internal/repositories/records"
	"github.com/tunckiral/pocketledger/internal/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	AccountBooks(db dbx.DBTX) accountbooks.Repository
	Records(db dbx.DBTX) records.Repository
}

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AccountBooks(db dbx.DBTX) accountbooks.Repository {
	return accountbooks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Records(db dbx.DBTX) records.Repository {
	return records.NewPostgresRepository(db)
}
