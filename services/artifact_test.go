package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePrescriptionPDF(t *testing.T) {
	dir := t.TempDir()
	artifacts := NewArtifactService(dir)

	path, err := artifacts.GeneratePrescriptionPDF("Jane Roe", "jane@example.com", "Rest and fluids", "Paracetamol 500mg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/prescription-"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	content, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestPaymentQR(t *testing.T) {
	artifacts := NewArtifactService(t.TempDir())

	qr, err := artifacts.PaymentQR("txn-001", "500", "General consultation")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
	assert.Greater(t, len(qr), len("data:image/png;base64,"))
}
