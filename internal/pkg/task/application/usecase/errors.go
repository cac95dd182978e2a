package usecase

import "github.com/Shreya020904/Planner-ui/internal/apperror"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = apperror.New(apperror.ErrUnavailable, "task persistence error")
