package repository

import (
	"github.com/airpulse-io/airpulse/infra"
)

type Repository struct {
	AlertRecordRepo *AlertRecordRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		AlertRecordRepo: NewAlertRecordRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
