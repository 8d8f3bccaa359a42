package faults

import "errors"

// Четыре вида отказов бизнес-логики. Каждый сервисный пакет объявляет
// свои sentinel-ошибки, оборачивая один из видов через fmt.Errorf("%w: ..."),
// поэтому хендлеры маппят вид на HTTP-статус через errors.Is,
// не зная конкретных ошибок сервиса.
var (
	// ErrValidation - некорректный ввод, исправляется вызывающей стороной.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization - у актора нет роли/владения для действия, состояние не меняется.
	ErrAuthorization = errors.New("not authorized")

	// ErrInvalidState - действие не разрешено в текущем статусе груза или ставки,
	// включая проигравших гонку и попытки перехода из терминального статуса.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound - груз/ставка/пользователь не существует.
	ErrNotFound = errors.New("not found")
)
