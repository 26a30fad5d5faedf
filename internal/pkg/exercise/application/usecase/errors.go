package usecase

import "github.com/charbar-cyber/CoupleClarity-sub001/internal/pkg/shared"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = shared.Persistence("exercise use case persistence error")
