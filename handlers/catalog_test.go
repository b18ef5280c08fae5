package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tripdesk/database"

	"github.com/stretchr/testify/assert"
)

func TestWriteStatusMapsDuplicateToConflict(t *testing.T) {
	dup := fmt.Errorf("a service named %q %w", "City Tour", database.ErrDuplicate)
	assert.Equal(t, http.StatusConflict, writeStatus(dup))
}

func TestWriteStatusDefaultsToBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, writeStatus(errors.New("vehicle type not found")))
}
