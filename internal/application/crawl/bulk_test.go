package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/corpcrawl/internal/application/crawl"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de gateway
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway gateway de crawl programable; registra los payloads de cada fase.
type fakeGateway struct {
	checkResult  *entity.BulkCheckResult
	checkErr     error
	uploadResult *entity.BulkUploadResult
	uploadErr    error

	checkPayload  []byte
	uploadPayload []byte
	uploads       int

	submitResult *entity.CrawlRequest
	submitErr    error
}

func (f *fakeGateway) SubmitSingle(ctx context.Context, inputType, inputValue string) (*entity.CrawlRequest, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func (f *fakeGateway) GetRequest(ctx context.Context, id string) (*entity.CrawlRequest, error) {
	return f.submitResult, nil
}

func (f *fakeGateway) History(ctx context.Context, limit int) ([]entity.CrawlRequest, error) {
	return nil, nil
}

func (f *fakeGateway) BulkCheck(ctx context.Context, filename string, file []byte) (*entity.BulkCheckResult, error) {
	f.checkPayload = append([]byte(nil), file...)
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	return f.checkResult, nil
}

func (f *fakeGateway) BulkUpload(ctx context.Context, filename string, file []byte, inputType string) (*entity.BulkUploadResult, error) {
	f.uploads++
	f.uploadPayload = append([]byte(nil), file...)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadResult, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "disabled"})
}

func proceedable() *entity.BulkCheckResult {
	return &entity.BulkCheckResult{
		TotalRows:        3,
		ValidRows:        3,
		RequiredCredits:  3,
		AvailableCredits: 10,
		CanProceed:       true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del controlador bulk
// ──────────────────────────────────────────────────────────────────────────────

// Flujo feliz: Select → Reviewed → Confirm → Idle, con commit exactamente una vez.
func TestBulk_FlujoCompleto(t *testing.T) {
	gw := &fakeGateway{
		checkResult:  proceedable(),
		uploadResult: &entity.BulkUploadResult{TotalProcessed: 3},
	}
	committed := 0
	c := crawl.NewBulkController(gw, testLogger(), func() { committed++ })

	check, err := c.Select(context.Background(), "empresas.csv", []byte("data"), entity.InputDomain)
	require.NoError(t, err)
	assert.True(t, check.CanProceed)
	assert.Equal(t, crawl.StateReviewed, c.State())

	result, err := c.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, crawl.StateIdle, c.State())
	assert.Equal(t, 1, gw.uploads)
	assert.Equal(t, 1, committed, "el callback de commit debe dispararse una vez")
}

// Las dos fases envían exactamente los mismos bytes capturados en Select,
// aunque el slice original mute después.
func TestBulk_MismoPayloadEnAmbasFases(t *testing.T) {
	gw := &fakeGateway{
		checkResult:  proceedable(),
		uploadResult: &entity.BulkUploadResult{},
	}
	c := crawl.NewBulkController(gw, testLogger(), nil)

	payload := []byte("contenido original")
	_, err := c.Select(context.Background(), "empresas.csv", payload, entity.InputDomain)
	require.NoError(t, err)

	// Mutar el slice del que llama no debe afectar al payload capturado.
	copy(payload, "XXXXXXXXXXXXXXXXXX")

	_, err = c.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "contenido original", string(gw.checkPayload))
	assert.Equal(t, gw.checkPayload, gw.uploadPayload,
		"check y upload deben operar sobre los mismos bytes")
}

// Con can_proceed falso el commit no se invoca jamás, ni siquiera llamando
// Confirm programáticamente; el controlador queda en Reviewed.
func TestBulk_SinSaldoNuncaCompromete(t *testing.T) {
	gw := &fakeGateway{
		checkResult: &entity.BulkCheckResult{
			TotalRows:        100,
			ValidRows:        100,
			RequiredCredits:  100,
			AvailableCredits: 10,
			CanProceed:       false,
			CreditsNeeded:    90,
		},
	}
	c := crawl.NewBulkController(gw, testLogger(), nil)

	_, err := c.Select(context.Background(), "empresas.csv", []byte("data"), entity.InputDomain)
	require.NoError(t, err)

	_, err = c.Confirm(context.Background())
	require.ErrorIs(t, err, domain.ErrInsufficientCredits)
	require.ErrorIs(t, err, domain.ErrRejected)
	assert.Zero(t, gw.uploads, "el commit no debe invocarse sin comprobación procedente")
	assert.Equal(t, crawl.StateReviewed, c.State())
}

// Cero filas válidas tampoco es procedente, da igual el saldo.
func TestBulk_CeroFilasValidasNoProcede(t *testing.T) {
	gw := &fakeGateway{
		checkResult: &entity.BulkCheckResult{
			TotalRows:        5,
			ValidRows:        0,
			RequiredCredits:  0,
			AvailableCredits: 100,
			CanProceed:       false,
		},
	}
	c := crawl.NewBulkController(gw, testLogger(), nil)
	check, err := c.Select(context.Background(), "vacio.csv", []byte("data"), entity.InputDomain)
	require.NoError(t, err)
	assert.False(t, check.CanProceed)

	_, err = c.Confirm(context.Background())
	require.Error(t, err)
	assert.Zero(t, gw.uploads)
}

// Confirm sin comprobación previa se rechaza.
func TestBulk_ConfirmSinComprobacion(t *testing.T) {
	gw := &fakeGateway{}
	c := crawl.NewBulkController(gw, testLogger(), nil)
	_, err := c.Confirm(context.Background())
	require.ErrorIs(t, err, domain.ErrRejected)
	assert.Zero(t, gw.uploads)
}

// Un error en la comprobación devuelve el controlador a Idle.
func TestBulk_ErrorEnCheckVuelveAIdle(t *testing.T) {
	gw := &fakeGateway{checkErr: domain.Rejectedf("formato de fichero inválido")}
	c := crawl.NewBulkController(gw, testLogger(), nil)
	_, err := c.Select(context.Background(), "empresas.xlsx", []byte("data"), entity.InputDomain)
	require.ErrorIs(t, err, domain.ErrRejected)
	assert.Equal(t, crawl.StateIdle, c.State())
}

// Un error en el commit también resetea; el callback no se dispara.
func TestBulk_ErrorEnCommitVuelveAIdle(t *testing.T) {
	gw := &fakeGateway{
		checkResult: proceedable(),
		uploadErr:   domain.Transportf(context.DeadlineExceeded),
	}
	committed := 0
	c := crawl.NewBulkController(gw, testLogger(), func() { committed++ })

	_, err := c.Select(context.Background(), "empresas.csv", []byte("data"), entity.InputDomain)
	require.NoError(t, err)
	_, err = c.Confirm(context.Background())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, crawl.StateIdle, c.State())
	assert.Zero(t, committed)
}

// Cancel desde Reviewed descarta todo sin efectos; fuera de Reviewed es no-op.
func TestBulk_Cancel(t *testing.T) {
	gw := &fakeGateway{checkResult: proceedable()}
	c := crawl.NewBulkController(gw, testLogger(), nil)

	c.Cancel() // en Idle: no-op
	assert.Equal(t, crawl.StateIdle, c.State())

	_, err := c.Select(context.Background(), "empresas.csv", []byte("data"), entity.InputDomain)
	require.NoError(t, err)
	c.Cancel()
	assert.Equal(t, crawl.StateIdle, c.State())
	assert.Nil(t, c.Check())
	assert.Zero(t, gw.uploads, "cancelar no compromete nada")
}

// Mientras una operación vuela no se admite otra selección.
func TestBulk_SeleccionDobleRechazada(t *testing.T) {
	gw := &fakeGateway{checkResult: proceedable()}
	c := crawl.NewBulkController(gw, testLogger(), nil)
	_, err := c.Select(context.Background(), "a.csv", []byte("a"), entity.InputDomain)
	require.NoError(t, err)

	// Reviewed: una segunda selección sin cancelar la vigente se rechaza.
	_, err = c.Select(context.Background(), "b.csv", []byte("b"), entity.InputDomain)
	require.ErrorIs(t, err, domain.ErrRejected)
}

// Tipo de entrada desconocido se corta antes de llamar al backend.
func TestBulk_TipoEntradaInvalido(t *testing.T) {
	gw := &fakeGateway{}
	c := crawl.NewBulkController(gw, testLogger(), nil)
	_, err := c.Select(context.Background(), "a.csv", []byte("a"), "telefono")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, crawl.StateIdle, c.State())
}
