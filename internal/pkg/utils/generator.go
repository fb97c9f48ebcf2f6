package utils

import (
	"fmt"

	"vitalis-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.New().String())
}

func GeneratePaymentID() string {
	return uuid.New().String()
}
