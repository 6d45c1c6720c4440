package promotion

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда промокод не найден
	ErrPromotionNotFound = errors.New("promotion.repository: promotion not found")

	// ErrDuplicateCode возвращается при попытке создать промокод с существующим кодом
	ErrDuplicateCode = errors.New("promotion.repository: duplicate promo code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promotion.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promotion.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("promotion.repository: failed to scan row")
)
