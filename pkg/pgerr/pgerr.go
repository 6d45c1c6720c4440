package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE коды PostgreSQL, которые обрабатываются репозиториями
const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	CheckViolation       = "23514"
	ExclusionViolation   = "23P01"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
)

// Code возвращает SQLSTATE ошибки lib/pq или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Is проверяет, что err - ошибка PostgreSQL с одним из кодов
func Is(err error, codes ...string) bool {
	code := Code(err)
	if code == "" {
		return false
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
